package repository

import "karaku/backend/internal/model"

// TranslationRepository stores the translation history in translations_table.
// textSpanish holds the source text and textEnglish the translation; the
// column names predate support for other language pairs.
type TranslationRepository = KeyedStore[model.Translation]

func NewTranslationRepository(db dbtx, opts ...Option) TranslationRepository {
	return newSQLStore(db, table[model.Translation]{
		name:    "translations_table",
		columns: []string{"textEnglish", "textSpanish", "language", "country", "category"},
		autoID:  true,
		id:      func(t model.Translation) int64 { return t.ID },
		values: func(t model.Translation) []any {
			return []any{t.TextTranslated, t.TextSource, t.Language, t.Country, t.Category}
		},
		scan: scanTranslation,
	}, opts...)
}

func scanTranslation(s scanner) (model.Translation, error) {
	var t model.Translation
	err := s.Scan(&t.ID, &t.TextTranslated, &t.TextSource, &t.Language, &t.Country, &t.Category)
	return t, err
}
