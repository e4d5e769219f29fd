package portfolio

import (
	"fmt"

	"github.com/event-showcase-api/internal/domain"
)

func placeholder(width, height int, text string) string {
	return fmt.Sprintf("/placeholder.svg?height=%d&width=%d&text=%s", height, width, text)
}

func gallery(texts ...string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = placeholder(800, 600, t)
	}
	return out
}

// SeedCategories returns the demo categories in display order.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{CategoryID: "wedding", Label: "Mariages", Description: "Cérémonies et réceptions", Color: "from-pink-500 to-rose-500"},
		{CategoryID: "corporate", Label: "Entreprise", Description: "Événements d'entreprise", Color: "from-blue-500 to-cyan-500"},
		{CategoryID: "production", Label: "Production Musicale", Description: "Création musicale", Color: "from-purple-500 to-pink-500"},
		{CategoryID: "mapping", Label: "Vidéo Mapping", Description: "Spectacles visuels", Color: "from-indigo-500 to-purple-500"},
		{CategoryID: "media", Label: "Captations & Médias", Description: "Captations et podcasts", Color: "from-green-500 to-emerald-500"},
	}
}

// SeedProjects returns the demo portfolio.
func SeedProjects() []domain.Project {
	return []domain.Project{
		{
			ProjectID:  1,
			Title:      "Mariage Château de Versailles",
			Slug:       "mariage-chateau-versailles",
			CategoryID: "wedding",
			Image:      placeholder(600, 400, "Mariage+Principal"),
			Gallery: gallery("Cérémonie+Extérieure", "Décoration+Florale", "Première+Danse",
				"Animation+DJ", "Éclairage+Scénique", "Cocktail+Vin+Honneur"),
			Description: "Organisation complète d'un mariage de 200 invités avec production musicale sur-mesure",
			FullDescription: "Un mariage d'exception dans le cadre prestigieux du Château de Versailles. " +
				"Nous avons orchestré chaque détail de cette célébration unique, de la cérémonie extérieure dans les jardins " +
				"à la soirée dansante dans la Grande Galerie. Notre équipe a créé une ambiance musicale sur-mesure, " +
				"alliant classique et moderne, avec un éclairage scénique qui a sublimé l'architecture historique du lieu.",
			Services: []string{"Organisation complète", "Production musicale", "Éclairage scénique", "DJ & Animation"},
			Client:   "Sophie & Alexandre",
			Date:     "Juin 2024",
			Guests:   "200 invités",
			Location: "Château de Versailles",
		},
		{
			ProjectID:  2,
			Title:      "Convention Technologique",
			Slug:       "convention-technologique",
			CategoryID: "corporate",
			Image:      placeholder(600, 400, "Convention+Principal"),
			Gallery: gallery("Scène+Principale", "Vidéo+Mapping", "Streaming+Live",
				"Stands+Exposition", "Networking+Cocktail"),
			Description: "Événement d'entreprise avec vidéo mapping et streaming live pour 500 participants",
			FullDescription: "Une convention technologique d'envergure internationale avec des innovations audiovisuelles spectaculaires. " +
				"Notre équipe a déployé un système de vidéo mapping immersif sur toute la scène principale, créant un environnement " +
				"visuel dynamique qui s'adaptait aux différentes présentations. Le streaming live multi-caméras a permis de toucher " +
				"plus de 10 000 participants à distance.",
			Services: []string{"Vidéo mapping", "Streaming live", "Sonorisation", "Régie technique"},
			Client:   "TechCorp International",
			Date:     "Mars 2024",
			Guests:   "500 participants",
			Location: "Palais des Congrès",
		},
		{
			ProjectID:   3,
			Title:       "Album 'Midnight Vibes'",
			Slug:        "album-midnight-vibes",
			CategoryID:  "production",
			Image:       placeholder(600, 400, "Studio+Production"),
			Gallery:     gallery("Studio+Enregistrement", "Console+Mixage", "Session+Live", "Pochette+Album"),
			Description: "Production complète d'un album de musique électronique avec 12 compositions originales",
			Services:    []string{"Composition originale", "Arrangement", "Mixage", "Mastering"},
			Client:      "Artist Collective",
			Date:        "Février 2024",
			Guests:      "Album 12 titres",
			Location:    "Studio EventPro",
		},
		{
			ProjectID:  4,
			Title:      "Festival Summer Beats",
			Slug:       "festival-summer-beats",
			CategoryID: "mapping",
			Image:      placeholder(600, 400, "Festival+Mapping"),
			Gallery: gallery("Façade+Projetée", "Scène+Principale", "Public+Festival", "Régie+Vidéo",
				"Feu+Artifice", "Show+Laser", "Coulisses", "Final+Mapping"),
			Description: "Spectacle de vidéo mapping sur façade historique avec synchronisation musicale",
			Services:    []string{"Vidéo mapping", "Conception visuelle", "Synchronisation audio", "Régie technique"},
			Client:      "Ville de Paris",
			Date:        "Juillet 2024",
			Guests:      "5000 spectateurs",
			Location:    "Place de la République",
		},
		{
			ProjectID:  5,
			Title:      "Soirée Gala Entreprise",
			Slug:       "soiree-gala-entreprise",
			CategoryID: "corporate",
			Image:      placeholder(600, 400, "Gala+Entreprise"),
			Gallery: gallery("Salle+Gala", "Performance+Live", "Animation+DJ", "Dîner+Assis",
				"Éclairage+Scénique", "Remise+Prix", "Piste+Danse"),
			Description: "Gala annuel avec performances live et animation DJ pour célébrer les 50 ans de l'entreprise",
			Services:    []string{"Animation DJ", "Performances live", "Éclairage scénique", "Organisation"},
			Client:      "Groupe Industriel",
			Date:        "Octobre 2024",
			Guests:      "300 invités",
			Location:    "Grand Palais",
		},
		{
			ProjectID:  6,
			Title:      "Bar-Mitzvah Moderne",
			Slug:       "bar-mitzvah-moderne",
			CategoryID: "wedding",
			Image:      placeholder(600, 400, "Bar+Mitzvah"),
			Gallery: gallery("Décoration+Thème", "Animations+Interactives", "DJ+Jeune+Public",
				"Éclairage", "Photo+Famille"),
			Description: "Célébration moderne avec thème musical personnalisé et animations interactives",
			Services:    []string{"Thème personnalisé", "Animations interactives", "DJ jeune public", "Éclairage"},
			Client:      "Famille Cohen",
			Date:        "Septembre 2024",
			Guests:      "120 invités",
			Location:    "Salle Wagram",
		},
	}
}
