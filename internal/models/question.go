package models

type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	QuizID        uint   `gorm:"not null;index" json:"quiz_id"`
	Text          string `gorm:"type:text;not null" json:"text"`
	OptionA       string `gorm:"size:500;not null" json:"option_a"`
	OptionB       string `gorm:"size:500;not null" json:"option_b"`
	OptionC       string `gorm:"size:500" json:"option_c,omitempty"`
	OptionD       string `gorm:"size:500" json:"option_d,omitempty"`
	CorrectAnswer string `gorm:"size:1;not null" json:"correct_answer"`
}

// Option returns the option text for an answer letter, empty if the
// letter has no option on this question.
func (q Question) Option(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
