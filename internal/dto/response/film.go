package response

import (
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type FilmResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	RuntimeMin  int    `json:"runtime_min"`
	Genre       string `json:"genre"`
	Rating      string `json:"rating"`
	ReleaseYear int    `json:"release_year"`
	DirectorID  int64  `json:"director_id"`
}

type DirectorResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Nationality *string `json:"nationality,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
}

// Helper converters
func FilmToResponse(film *entity.Film) FilmResponse {
	return FilmResponse{
		ID:          film.ID,
		Title:       film.Title,
		RuntimeMin:  film.RuntimeMin,
		Genre:       film.Genre,
		Rating:      film.Rating,
		ReleaseYear: film.ReleaseYear,
		DirectorID:  film.DirectorID,
	}
}

func FilmsToResponse(films []*entity.Film) []FilmResponse {
	result := make([]FilmResponse, 0, len(films))
	for _, f := range films {
		result = append(result, FilmToResponse(f))
	}
	return result
}

func DirectorToResponse(director *entity.Director) DirectorResponse {
	resp := DirectorResponse{
		ID:          director.ID,
		FirstName:   director.FirstName,
		LastName:    director.LastName,
		Nationality: director.Nationality,
	}
	if director.BirthDate != nil {
		birth := director.BirthDate.Format(utils.DateLayout)
		resp.BirthDate = &birth
	}
	return resp
}

func DirectorsToResponse(directors []*entity.Director) []DirectorResponse {
	result := make([]DirectorResponse, 0, len(directors))
	for _, d := range directors {
		result = append(result, DirectorToResponse(d))
	}
	return result
}
