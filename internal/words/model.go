package words

import "time"

type Word struct {
	ID        int
	Text      string
	Spin      bool
	SpawnedAt time.Time
}
