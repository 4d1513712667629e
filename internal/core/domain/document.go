package domain

import "time"

type Document struct {
	ID       uint64
	Name     string
	FilePath string
	Date     time.Time
}
