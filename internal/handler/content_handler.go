package handler

import (
	"errors"
	"net/http"

	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/service"
	"github.com/gin-gonic/gin"
)

// GetContentBlocks lists blocks for the raw admin editor, optionally
// filtered by page and section.
func (a *API) GetContentBlocks(c *gin.Context) {
	page := c.Query("page")
	section := c.Query("section")

	if page == "" {
		blocks, err := a.content.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "טעינת התוכן נכשלה")
			return
		}
		c.JSON(http.StatusOK, blocks)
		return
	}

	blocks, err := a.content.List(c.Request.Context(), page, section)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "טעינת התוכן נכשלה")
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// CreateContentBlock stores a new raw block.
func (a *API) CreateContentBlock(c *gin.Context) {
	var input service.ContentBlockInput
	if !bindJSON(c, &input, "נתוני תוכן שגויים") {
		return
	}

	block, err := a.content.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrContentFieldsMissing) {
			respondError(c, http.StatusBadRequest, "יש למלא עמוד ומקטע")
			return
		}
		respondError(c, http.StatusInternalServerError, "שמירת התוכן נכשלה")
		return
	}
	c.JSON(http.StatusCreated, block)
}

// UpdateContentBlock mutates a raw block in place.
func (a *API) UpdateContentBlock(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var input service.ContentBlockInput
	if !bindJSON(c, &input, "נתוני תוכן שגויים") {
		return
	}

	block, err := a.content.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrContentBlockNotFound) {
			respondError(c, http.StatusNotFound, "התוכן לא נמצא")
			return
		}
		respondError(c, http.StatusInternalServerError, "שמירת התוכן נכשלה")
		return
	}
	c.JSON(http.StatusOK, block)
}

// DeleteContentBlock removes a raw block; deletion is always explicit.
func (a *API) DeleteContentBlock(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.content.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrContentBlockNotFound) {
			respondError(c, http.StatusNotFound, "התוכן לא נמצא")
			return
		}
		respondError(c, http.StatusInternalServerError, "מחיקת התוכן נכשלה")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// Contact-info edit session. The whole group is one unit: begin seeds the
// four fields from resolved content, save writes them back field by field.

const contactUnitID = "contact-info"

// BeginContactEdit seeds the contact working copy.
func (a *API) BeginContactEdit(c *gin.Context) {
	info := a.contactInfo(c)
	draft := a.contactEdits.Begin(contactUnitID, service.ContactDraft{
		Phone:    info.Phone,
		Email:    info.Email,
		WhatsApp: info.WhatsApp,
		LinkedIn: info.LinkedIn,
	})
	c.JSON(http.StatusOK, draft)
}

// UpdateContactEdit applies field changes to the working copy only.
func (a *API) UpdateContactEdit(c *gin.Context) {
	var input service.ContactDraft
	if !bindJSON(c, &input, "נתוני קשר שגויים") {
		return
	}

	draft, err := a.contactEdits.Update(contactUnitID, func(d *service.ContactDraft) {
		*d = input
	})
	if err != nil {
		respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveContactEdit persists the working copy. On failure the session stays
// open with the attempted values so the admin can retry.
func (a *API) SaveContactEdit(c *gin.Context) {
	err := a.contactEdits.Save(contactUnitID, func(d service.ContactDraft) error {
		ctx := c.Request.Context()
		fields := []struct{ title, value string }{
			{"phone", d.Phone},
			{"email", d.Email},
			{"whatsapp", d.WhatsApp},
			{"linkedin", d.LinkedIn},
		}
		for _, f := range fields {
			if _, err := a.content.SaveField(ctx, "global", "contact-info", f.title, f.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, service.ErrNotEditing) {
			respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
			return
		}
		respondError(c, http.StatusInternalServerError, "שמירת פרטי הקשר נכשלה")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// CancelContactEdit discards the working copy.
func (a *API) CancelContactEdit(c *gin.Context) {
	a.contactEdits.Cancel(contactUnitID)
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// About-page edit sessions, one per section. Beginning a section while
// another is open silently discards the first (see EditManager).

func (a *API) seedAboutSection(c *gin.Context, section string) (service.AboutSectionDraft, bool) {
	blocks := a.blocksFor(c, "about", "")

	draft := service.AboutSectionDraft{Section: section}
	switch section {
	case service.AboutSectionCompany:
		draft.Company = content.ResolveCompany(blocks, a.defaults.Company())
	case service.AboutSectionServices:
		draft.ListHTML = content.ResolveListHTML(blocks, "about", section, a.defaults.Items("about", section))
	case service.AboutSectionProfessionalism:
		draft.ListHTML = content.ResolveListHTML(blocks, "about", section, a.defaults.Items("about", section))
	case service.AboutSectionEducation:
		draft.Education = content.ResolveEducation(blocks, a.defaults.Education())
	default:
		return service.AboutSectionDraft{}, false
	}
	return draft, true
}

// BeginAboutEdit seeds a working copy for one about-page section.
func (a *API) BeginAboutEdit(c *gin.Context) {
	section := c.Param("section")
	seed, ok := a.seedAboutSection(c, section)
	if !ok {
		respondError(c, http.StatusNotFound, "מקטע לא מוכר")
		return
	}
	c.JSON(http.StatusOK, a.aboutEdits.Begin(section, seed))
}

// GetAboutDraft returns the current working copy for a section.
func (a *API) GetAboutDraft(c *gin.Context) {
	draft, ok := a.aboutEdits.Draft(c.Param("section"))
	if !ok {
		respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		return
	}
	c.JSON(http.StatusOK, draft)
}

type aboutUpdateInput struct {
	Name     *string `json:"name"`
	Founder  *string `json:"founder"`
	ListHTML *string `json:"list_html"`
}

// UpdateAboutEdit applies scalar edits to the working copy.
func (a *API) UpdateAboutEdit(c *gin.Context) {
	section := c.Param("section")
	var input aboutUpdateInput
	if !bindJSON(c, &input, "נתוני מקטע שגויים") {
		return
	}

	draft, err := a.aboutEdits.Update(section, func(d *service.AboutSectionDraft) {
		if input.Name != nil {
			d.Company.Name = *input.Name
		}
		if input.Founder != nil {
			d.Company.Founder = *input.Founder
		}
		if input.ListHTML != nil {
			d.ListHTML = *input.ListHTML
		}
	})
	if err != nil {
		respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		return
	}
	c.JSON(http.StatusOK, draft)
}

type aboutEntryInput struct {
	Value       string `json:"value"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
}

// AppendAboutEntry appends an entry to the section's repeated list: a company
// field or an education row.
func (a *API) AppendAboutEntry(c *gin.Context) {
	section := c.Param("section")
	var input aboutEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = aboutEntryInput{}
	}

	draft, err := a.aboutEdits.Update(section, func(d *service.AboutSectionDraft) {
		switch section {
		case service.AboutSectionCompany:
			d.Company.Fields = service.AppendEntry(d.Company.Fields, input.Value)
		case service.AboutSectionEducation:
			d.Education = service.AppendEntry(d.Education, content.EducationEntry{
				Degree:      input.Degree,
				Field:       input.Field,
				Institution: input.Institution,
			})
		}
	})
	if err != nil {
		respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetAboutEntry replaces the entry at a position in the working copy.
func (a *API) SetAboutEntry(c *gin.Context) {
	section := c.Param("section")
	idx, err := parseIntParam(c, "idx")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var input aboutEntryInput
	if !bindJSON(c, &input, "נתוני רשומה שגויים") {
		return
	}

	draft, updateErr := a.aboutEdits.Update(section, func(d *service.AboutSectionDraft) {
		switch section {
		case service.AboutSectionCompany:
			d.Company.Fields = service.SetEntry(d.Company.Fields, idx, input.Value)
		case service.AboutSectionEducation:
			d.Education = service.SetEntry(d.Education, idx, content.EducationEntry{
				Degree:      input.Degree,
				Field:       input.Field,
				Institution: input.Institution,
			})
		}
	})
	if updateErr != nil {
		respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveAboutEntry deletes the entry at a position in the working copy.
func (a *API) RemoveAboutEntry(c *gin.Context) {
	section := c.Param("section")
	idx, err := parseIntParam(c, "idx")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	draft, updateErr := a.aboutEdits.Update(section, func(d *service.AboutSectionDraft) {
		switch section {
		case service.AboutSectionCompany:
			d.Company.Fields = service.RemoveEntry(d.Company.Fields, idx)
		case service.AboutSectionEducation:
			d.Education = service.RemoveEntry(d.Education, idx)
		}
	})
	if updateErr != nil {
		respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveAboutEdit persists the working copy of one section. List-family
// sections go through the one-way format migration; structured sections are
// JSON-encoded.
func (a *API) SaveAboutEdit(c *gin.Context) {
	section := c.Param("section")
	err := a.aboutEdits.Save(section, func(d service.AboutSectionDraft) error {
		ctx := c.Request.Context()
		switch d.Section {
		case service.AboutSectionCompany:
			_, err := a.content.SaveStructuredSection(ctx, "about", d.Section, d.Company)
			return err
		case service.AboutSectionServices, service.AboutSectionProfessionalism:
			_, err := a.content.SaveListSection(ctx, "about", d.Section, d.ListHTML)
			return err
		case service.AboutSectionEducation:
			_, err := a.content.SaveStructuredSection(ctx, "about", d.Section, d.Education)
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, service.ErrNotEditing) {
			respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
			return
		}
		respondError(c, http.StatusInternalServerError, "שמירת המקטע נכשלה")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// CancelAboutEdit discards the section's working copy.
func (a *API) CancelAboutEdit(c *gin.Context) {
	a.aboutEdits.Cancel(c.Param("section"))
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
