package model

// QuestionID is the position of a question in the question log
type QuestionID int

// Question is a discriminating question asked while collecting answers
type Question struct {
	ID   QuestionID `json:"id" yaml:"id"`
	Text string     `json:"text" yaml:"text"`
}
