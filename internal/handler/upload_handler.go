package handler

import (
	"net/http"
	"strings"

	"github.com/biochemsafety/site/internal/storage"
	"github.com/gin-gonic/gin"
)

// UploadFile stores an icon or image through the configured object store and
// returns its public URL. Failures surface directly; there is no retry.
func (a *API) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "לא נמצא קובץ להעלאה")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "ניתן להעלות קבצי תמונה בלבד")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "קריאת הקובץ נכשלה")
		return
	}
	defer src.Close()

	name := storage.ObjectName(file.Filename)
	fileURL, err := a.store.Upload(c.Request.Context(), name, src, file.Size, contentType)
	if err != nil {
		a.log.Error().Err(err).Str("name", name).Msg("upload failed")
		respondError(c, http.StatusInternalServerError, "שגיאה בהעלאת תמונה")
		return
	}

	c.JSON(http.StatusOK, gin.H{"file_url": fileURL})
}
