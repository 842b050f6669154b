package repository

import "karaku/backend/internal/model"

// CharacterRepository stores favorited characters in character_table.
type CharacterRepository = KeyedStore[model.Character]

func NewCharacterRepository(db dbtx, opts ...Option) CharacterRepository {
	return newSQLStore(db, table[model.Character]{
		name:    "character_table",
		columns: []string{"name", "species", "gender", "origin", "image"},
		id:      func(c model.Character) int64 { return c.ID },
		values: func(c model.Character) []any {
			return []any{c.Name, c.Species, c.Gender, c.OriginName, c.ImageURL}
		},
		scan: scanCharacter,
	}, opts...)
}

func scanCharacter(s scanner) (model.Character, error) {
	var c model.Character
	err := s.Scan(&c.ID, &c.Name, &c.Species, &c.Gender, &c.OriginName, &c.ImageURL)
	return c, err
}
