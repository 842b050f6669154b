package model

// UnknownValue fills character fields missing from the remote payload.
const UnknownValue = "Unknown"

// MissingID is assigned when the remote payload carries no id.
const MissingID int64 = -1

// Character is a favorited catalog character. Origin is stored by name only.
type Character struct {
	ID         int64
	Name       string
	Species    string
	Gender     string
	OriginName string
	ImageURL   string
}

// CharacterPage is one decoded catalog response. It is never persisted.
type CharacterPage struct {
	Info    PageInfo
	Results []Character
}

type PageInfo struct {
	Count int
	Pages int
	Next  *string
	Prev  *string
}
