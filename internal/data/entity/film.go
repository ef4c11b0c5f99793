package entity

type Film struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	RuntimeMin  int    `db:"runtime_min"`
	Genre       string `db:"genre"`
	Rating      string `db:"rating"` // age classification, e.g. G, PG, 18
	ReleaseYear int    `db:"release_year"`
	DirectorID  int64  `db:"director_id"`
}
