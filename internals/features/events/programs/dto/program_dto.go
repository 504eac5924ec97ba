package dto

import (
	"time"

	"github.com/google/uuid"

	articleDto "galeri_backend/internals/features/articles/dto"
	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/programs/model"
)

type CreateProgramRequest struct {
	eventbase.EventInput
	ArticleIDs []uuid.UUID `json:"article_ids" validate:"omitempty,max=50"`
}

type UpdateProgramRequest struct {
	eventbase.EventPatch
	ArticleIDs *[]uuid.UUID `json:"article_ids" validate:"omitempty,max=50"`
}

type ProgramResponse struct {
	eventbase.EventResponse
	Articles []articleDto.ArticleBrief `json:"articles"`
}

// FromModel: status di-project dengan jam baca, tanpa write-back.
func FromModel(m model.ProgramModel, now time.Time) ProgramResponse {
	return ProgramResponse{
		EventResponse: eventbase.NewEventResponse(m.EventBase, m.Media, now),
		Articles:      articleDto.BriefsFromModels(m.Articles),
	}
}

func FromModels(rows []model.ProgramModel, now time.Time) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r, now))
	}
	return out
}
