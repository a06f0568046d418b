package service

import (
	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/db"
)

// ServiceDraft is the working copy of one service in the services manager.
// A zero ID means the unit has no store identity yet and saving creates it.
type ServiceDraft struct {
	ID uint `json:"id"`
	ServiceInput
}

// CloneServiceDraft is the deep-copy function for service edit sessions.
func CloneServiceDraft(d ServiceDraft) ServiceDraft {
	return d
}

// DraftFromService seeds a service draft from a stored record.
func DraftFromService(svc *db.Service) ServiceDraft {
	return ServiceDraft{
		ID: svc.ID,
		ServiceInput: ServiceInput{
			Slug:             svc.Slug,
			Title:            svc.Title,
			ShortDescription: svc.ShortDescription,
			FullDescription:  svc.FullDescription,
			Benefits:         svc.Benefits,
			Process:          svc.Process,
			IconURL:          svc.IconURL,
			ImageURL:         svc.ImageURL,
			Order:            svc.Order,
		},
	}
}

// About-page section names editable through the management panel.
const (
	AboutSectionCompany         = "company"
	AboutSectionServices        = "services"
	AboutSectionProfessionalism = "professionalism"
	AboutSectionEducation       = "education"
)

// AboutSectionDraft is the working copy of one about-page section. Exactly
// one of the payload fields is meaningful, decided by Section: Company for
// the structured company info, ListHTML for the two list-family sections,
// Education for the education entries.
type AboutSectionDraft struct {
	Section   string                   `json:"section"`
	Company   content.CompanyInfo      `json:"company,omitempty"`
	ListHTML  string                   `json:"list_html,omitempty"`
	Education []content.EducationEntry `json:"education,omitempty"`
}

// CloneAboutSectionDraft deep-copies the draft, including its entry slices.
func CloneAboutSectionDraft(d AboutSectionDraft) AboutSectionDraft {
	out := d
	out.Company.Fields = append([]string(nil), d.Company.Fields...)
	out.Education = append([]content.EducationEntry(nil), d.Education...)
	return out
}

// ContactDraft is the working copy of the global contact-info fields.
type ContactDraft struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	LinkedIn string `json:"linkedin"`
}

// CloneContactDraft is the deep-copy function for contact edit sessions.
func CloneContactDraft(d ContactDraft) ContactDraft {
	return d
}
