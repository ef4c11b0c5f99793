package request

type FilmRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	RuntimeMin  int    `json:"runtime_min" validate:"required,min=1,max=600"`
	Genre       string `json:"genre" validate:"max=50"`
	Rating      string `json:"rating" validate:"max=10"`
	ReleaseYear int    `json:"release_year" validate:"omitempty,min=1888"`
	DirectorID  int64  `json:"director_id" validate:"required,min=1"`
}

type DirectorRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Nationality *string `json:"nationality,omitempty" validate:"omitempty,max=50"`
	BirthDate   *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
