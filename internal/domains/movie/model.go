package movie

// Movie is one row of the movies table.
// ID is assigned by the database on insert and never changes.
type Movie struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Director string `json:"director" db:"director"`
}
