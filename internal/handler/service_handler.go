package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/biochemsafety/site/internal/service"
	"github.com/gin-gonic/gin"
)

// GetServices lists every service for the management panel.
func (a *API) GetServices(c *gin.Context) {
	services, err := a.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "טעינת תחומי ההתמחות נכשלה")
		return
	}
	c.JSON(http.StatusOK, services)
}

// DeleteService removes a specialty area. Deleting also ends an edit session
// that may still be open on it.
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, "תחום ההתמחות לא נמצא")
			return
		}
		respondError(c, http.StatusInternalServerError, "מחיקת תחום ההתמחות נכשלה")
		return
	}

	a.serviceEdits.Cancel(serviceUnitID(id))
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// serviceUnitID names an edit-session unit; zero means a new, identity-less
// service.
func serviceUnitID(id uint) string {
	if id == 0 {
		return "service:new"
	}
	return fmt.Sprintf("service:%d", id)
}

// BeginServiceEdit seeds a working copy from the stored service, or an empty
// draft for a new one. A session already open on another service returns to
// viewing without saving.
func (a *API) BeginServiceEdit(c *gin.Context) {
	raw := c.Param("id")

	var seed service.ServiceDraft
	if raw != "new" {
		id, err := parseUintParam(c, "id")
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		svc, err := a.catalog.ByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrServiceNotFound) {
				respondError(c, http.StatusNotFound, "תחום ההתמחות לא נמצא")
				return
			}
			respondError(c, http.StatusInternalServerError, "טעינת תחום ההתמחות נכשלה")
			return
		}
		seed = service.DraftFromService(svc)
	}

	c.JSON(http.StatusOK, a.serviceEdits.Begin(serviceUnitID(seed.ID), seed))
}

// UpdateServiceEdit applies field changes to the working copy only.
func (a *API) UpdateServiceEdit(c *gin.Context) {
	unitID, ok := a.serviceEditUnit(c)
	if !ok {
		return
	}

	var input service.ServiceInput
	if !bindJSON(c, &input, "נתוני תחום שגויים") {
		return
	}

	draft, err := a.serviceEdits.Update(unitID, func(d *service.ServiceDraft) {
		d.ServiceInput = input
	})
	if err != nil {
		respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveServiceEdit persists the working copy: an update when the unit has a
// store identity, a create when it does not. Validation and store failures
// keep the session editing with the attempted values.
func (a *API) SaveServiceEdit(c *gin.Context) {
	unitID, ok := a.serviceEditUnit(c)
	if !ok {
		return
	}

	var saved interface{}
	err := a.serviceEdits.Save(unitID, func(d service.ServiceDraft) error {
		ctx := c.Request.Context()
		if d.ID == 0 {
			svc, err := a.catalog.Create(ctx, d.ServiceInput)
			if err != nil {
				return err
			}
			saved = svc
			return nil
		}
		svc, err := a.catalog.Update(ctx, d.ID, d.ServiceInput)
		if err != nil {
			return err
		}
		saved = svc
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEditing):
			respondError(c, http.StatusConflict, "אין טיוטה פתוחה")
		case errors.Is(err, service.ErrServiceFieldsMissing):
			respondError(c, http.StatusBadRequest, "יש למלא שם, מזהה ותיאור קצר")
		default:
			respondError(c, http.StatusInternalServerError, "שמירת תחום ההתמחות נכשלה")
		}
		return
	}
	c.JSON(http.StatusOK, saved)
}

// CancelServiceEdit discards the working copy.
func (a *API) CancelServiceEdit(c *gin.Context) {
	unitID, ok := a.serviceEditUnit(c)
	if !ok {
		return
	}
	a.serviceEdits.Cancel(unitID)
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (a *API) serviceEditUnit(c *gin.Context) (string, bool) {
	raw := c.Param("id")
	if raw == "new" {
		return serviceUnitID(0), true
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return serviceUnitID(id), true
}
