package domain

type Project struct {
	ProjectID       int      `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	CategoryID      string   `json:"category"`
	Image           string   `json:"image"`
	Gallery         []string `json:"gallery"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Services        []string `json:"services"`
	Client          string   `json:"client"`
	Date            string   `json:"date"`   // free text, e.g. "Juin 2024"
	Guests          string   `json:"guests"` // free text, e.g. "200 invités"
	Location        string   `json:"location"`
}

type ProjectInput struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Slug            string   `json:"slug" validate:"omitempty,max=200"`
	CategoryID      string   `json:"category" validate:"required"`
	Image           string   `json:"image"`
	Gallery         []string `json:"gallery"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Services        []string `json:"services"`
	Client          string   `json:"client"`
	Date            string   `json:"date"`
	Guests          string   `json:"guests"`
	Location        string   `json:"location"`
}
