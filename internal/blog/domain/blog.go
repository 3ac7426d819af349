package domain

import "time"

type State string

const (
	StateDraft     State = "draft"
	StatePublished State = "published"
)

type Blog struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Body        string    `bson:"body"`
	Tags        []string  `bson:"tags"`
	State       State     `bson:"state"`
	ReadCount   int64     `bson:"read_count"`
	ReadingTime int       `bson:"reading_time"`
	AuthorID    string    `bson:"author_id"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}
