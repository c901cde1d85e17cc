package handlers

import "lgsmfleet/hub/domain"

func fromSpokeRequest(r SpokeRequest) domain.Spoke {
	return domain.Spoke{Name: r.Name, IP: r.IP, Port: r.Port, APIKey: r.APIKey}
}

func toSpokeResponse(s domain.Spoke) SpokeResponse {
	return SpokeResponse{ID: s.ID, Name: s.Name, IP: s.IP, Port: s.Port, APIKey: s.APIKey}
}

func toSpokesResponse(spokes []domain.Spoke) []SpokeResponse {
	out := make([]SpokeResponse, 0, len(spokes))
	for _, s := range spokes {
		out = append(out, toSpokeResponse(s))
	}
	return out
}
