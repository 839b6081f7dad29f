package models

// HeroContent представляет контент hero-блока главной страницы, редактируется из админки
type HeroContent struct {
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
	PrimaryCTAText     string `json:"primaryCtaText"`
	PrimaryCTALink     string `json:"primaryCtaLink"`
	SecondaryCTAText   string `json:"secondaryCtaText"`
	SecondaryCTALink   string `json:"secondaryCtaLink"`
}
