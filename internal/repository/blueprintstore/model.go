package blueprintstore

import (
	"strings"
	"time"

	"archsmith/internal/blueprint"
	"archsmith/internal/types"
)

// Summary is the listing row for a stored blueprint.
type Summary struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	BusinessIdea string            `json:"business_idea"`
	DetailLevel  types.DetailLevel `json:"detail_level"`
	Platform     types.Platform    `json:"deployment_platform"`
}

func summarize(doc blueprint.Document) Summary {
	return Summary{
		ID:           doc.ID,
		CreatedAt:    doc.CreatedAt,
		BusinessIdea: doc.UserInput.BusinessIdea,
		DetailLevel:  doc.UserInput.DetailLevel,
		Platform:     doc.UserInput.Platform,
	}
}

func normalizeDoc(doc blueprint.Document) blueprint.Document {
	doc.ID = strings.TrimSpace(doc.ID)
	return doc
}

type rowScanner interface {
	Scan(dest ...any) error
}
