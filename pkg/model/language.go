package model

type LocalizationCode string

const (
	LocalizationCodeEnglish  LocalizationCode = "en"
	LocalizationCodeFrench   LocalizationCode = "fr"
	LocalizationCodeGerman   LocalizationCode = "de"
	LocalizationCodeSpanish  LocalizationCode = "es"
	LocalizationCodeJapanese LocalizationCode = "ja"
)
