package converter

import (
	"encoding/json"
	"time"

	"hotel-back-office/internal/domain/room"
)

type seasonalRatePayload struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Multiplier float64   `json:"multiplier"`
}

func SeasonalRatesToJSON(rates []room.SeasonalRate) ([]byte, error) {
	payload := make([]seasonalRatePayload, len(rates))
	for i, r := range rates {
		payload[i] = seasonalRatePayload{From: r.From, To: r.To, Multiplier: r.Multiplier}
	}
	return json.Marshal(payload)
}

func SeasonalRatesFromJSON(data []byte) ([]room.SeasonalRate, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var payload []seasonalRatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}
	rates := make([]room.SeasonalRate, len(payload))
	for i, p := range payload {
		rates[i] = room.SeasonalRate{From: p.From, To: p.To, Multiplier: p.Multiplier}
	}
	return rates, nil
}
