package dto

import (
	"time"

	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/party_literasi/model"
)

type CreatePartyLiterasiRequest struct {
	eventbase.EventInput
}

type UpdatePartyLiterasiRequest struct {
	eventbase.EventPatch
}

type PartyLiterasiResponse struct {
	eventbase.EventResponse
}

func FromModel(m model.PartyLiterasiModel, now time.Time) PartyLiterasiResponse {
	return PartyLiterasiResponse{EventResponse: eventbase.NewEventResponse(m.EventBase, m.Media, now)}
}

func FromModels(rows []model.PartyLiterasiModel, now time.Time) []PartyLiterasiResponse {
	out := make([]PartyLiterasiResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r, now))
	}
	return out
}
