package response

import (
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/pkg/utils"
)

type ScreeningResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	FilmID    int64  `json:"film_id"`
	RoomID    int64  `json:"room_id"`
	StaffID   int64  `json:"staff_id"`
	TariffID  int64  `json:"tariff_id"`
}

// BoardEntryResponse is one line of the daily board shown at the box office.
type BoardEntryResponse struct {
	ScreeningID    int64   `json:"screening_id"`
	FilmTitle      string  `json:"film_title"`
	RoomNumber     int     `json:"room_number"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	BasePrice      float64 `json:"base_price"`
	SeatsRemaining int     `json:"seats_remaining"`
}

// Helper converters
func ScreeningToResponse(screening *entity.Screening) ScreeningResponse {
	return ScreeningResponse{
		ID:        screening.ID,
		Date:      screening.Date.Format(utils.DateLayout),
		StartTime: screening.StartsAt.Format(utils.TimeLayout),
		EndTime:   screening.EndsAt.Format(utils.TimeLayout),
		FilmID:    screening.FilmID,
		RoomID:    screening.RoomID,
		StaffID:   screening.StaffID,
		TariffID:  screening.TariffID,
	}
}

func SummaryToBoardEntry(summary *repository.ScreeningSummary) BoardEntryResponse {
	return BoardEntryResponse{
		ScreeningID:    summary.ScreeningID,
		FilmTitle:      summary.FilmTitle,
		RoomNumber:     summary.RoomNumber,
		StartTime:      summary.StartsAt.Format(utils.TimeLayout),
		EndTime:        summary.EndsAt.Format(utils.TimeLayout),
		BasePrice:      summary.BasePrice,
		SeatsRemaining: summary.SeatsRemaining,
	}
}

func SummariesToBoard(summaries []*repository.ScreeningSummary) []BoardEntryResponse {
	board := make([]BoardEntryResponse, 0, len(summaries))
	for _, s := range summaries {
		board = append(board, SummaryToBoardEntry(s))
	}
	return board
}
