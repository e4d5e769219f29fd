package domain

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "from-purple-500 to-pink-500"

// CategoryColors is the palette of gradient tokens a category may use.
var CategoryColors = []string{
	"from-purple-500 to-pink-500",
	"from-blue-500 to-cyan-500",
	"from-green-500 to-emerald-500",
	"from-orange-500 to-red-500",
	"from-indigo-500 to-purple-500",
	"from-teal-500 to-blue-500",
	"from-pink-500 to-rose-500",
	"from-yellow-500 to-orange-500",
}

// Category groups portfolio projects. ProjectCount is derived from the project
// collection whenever categories are read and is never stored.
type Category struct {
	CategoryID   string `json:"id"`
	Label        string `json:"label"`
	Description  string `json:"description,omitempty"`
	Color        string `json:"color"`
	ProjectCount int    `json:"project_count"`
}

type CategoryInput struct {
	CategoryID  string `json:"id" validate:"omitempty,max=100"`
	Label       string `json:"label" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"omitempty,category_color"`
}
