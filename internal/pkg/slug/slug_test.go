package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Mariage Château de Versailles": "mariage-chateau-de-versailles",
		"Album 'Midnight Vibes'":        "album-midnight-vibes",
		"Captations & Médias":           "captations-medias",
		"  Soirée   Gala -- Entreprise ": "soiree-gala-entreprise",
		"Bar-Mitzvah Moderne":           "bar-mitzvah-moderne",
		"Vidéo Mapping 2024":            "video-mapping-2024",
		"!!!":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), in)
	}
}
