package handler

import (
	"net/http"

	"github.com/biochemsafety/site/internal/links"
	"github.com/gin-gonic/gin"
)

// GetLinkTargets returns the picker options for internal-link insertion:
// the fixed pages plus every service, addressed by slug.
func (a *API) GetLinkTargets(c *gin.Context) {
	services, err := a.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "טעינת תחומי ההתמחות נכשלה")
		return
	}

	pages := make([]gin.H, 0, 4)
	for _, p := range links.StaticTargets() {
		pages = append(pages, gin.H{"name": p.Name, "label": p.Label})
	}

	serviceTargets := make([]gin.H, 0, len(services))
	for _, svc := range services {
		serviceTargets = append(serviceTargets, gin.H{
			"target": links.ServiceTargetPrefix + svc.Slug,
			"title":  svc.Title,
		})
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages, "services": serviceTargets})
}

type linkInsertInput struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

// ResolveLink maps a picker selection and label to the anchor to insert. An
// empty target or label yields no insertion; the editor keeps its dialog
// open.
func (a *API) ResolveLink(c *gin.Context) {
	var input linkInsertInput
	if !bindJSON(c, &input, "נתוני קישור שגויים") {
		return
	}

	anchor, ok := links.BuildAnchor(input.Label, input.Target)
	if !ok {
		respondError(c, http.StatusUnprocessableEntity, "יש לבחור עמוד ולהזין טקסט לקישור")
		return
	}

	href, _ := links.ResolveTarget(input.Target)
	c.JSON(http.StatusOK, gin.H{"href": href, "anchor": anchor})
}
