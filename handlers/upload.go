package handlers

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxUploadPhotos = 100

type UploadController struct {
	dir    string
	client *http.Client
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{
		dir: dir,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload receives multipart photos and stores them under collision-resistant
// names, keeping the original extension.
func (uc *UploadController) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid multipart form",
		})
	}

	files := form.File["photos"]
	if len(files) > maxUploadPhotos {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Too many photos",
		})
	}

	uploaded := make([]string, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to store photo",
			})
		}

		name := storedName(file.Filename)
		err = uc.writeFile(name, src)
		src.Close()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to store photo",
			})
		}

		uploaded = append(uploaded, name)
	}

	return c.JSON(http.StatusOK, uploaded)
}

// UploadByLink fetches a remote image and stores it as a local photo. A
// failed fetch is the upstream's fault, hence 502.
func (uc *UploadController) UploadByLink(c echo.Context) error {
	var req struct {
		Link string `json:"link"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if msg := utils.ValidateRequired("link", req.Link); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	parsed, err := url.Parse(req.Link)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid link",
		})
	}

	httpReq, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, req.Link, nil)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid link",
		})
	}

	resp, err := uc.client.Do(httpReq)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Failed to download the photo from the provided link",
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Failed to download the photo from the provided link",
		})
	}

	name := storedName(parsed.Path)
	if err := uc.writeFile(name, resp.Body); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to store photo",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"filename": name})
}

func (uc *UploadController) writeFile(name string, src io.Reader) error {
	dst, err := os.Create(filepath.Join(uc.dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// storedName puts a collision-resistant prefix in front of the original
// extension. Extensionless sources default to .jpg.
func storedName(original string) string {
	ext := filepath.Ext(original)
	if ext == "" {
		ext = ".jpg"
	}
	return "photo-" + uuid.NewString() + ext
}
