package domain

import "time"

type Feedback struct {
	ID        int32     `json:"id"`
	BookID    int32     `json:"book_id"`
	AuthorID  int32     `json:"author_id"`
	Note      int32     `json:"note"`
	Comment   string    `json:"comment"`
	CreatedOn time.Time `json:"created_on"`
}

type FeedbackRequest struct {
	BookID  int32  `json:"book_id"`
	Note    int32  `json:"note"`
	Comment string `json:"comment"`
}

// FeedbackEntry is a feedback annotated for a particular viewer.
type FeedbackEntry struct {
	Note        int32  `json:"note"`
	Comment     string `json:"comment"`
	OwnFeedback bool   `json:"own_feedback"`
}
