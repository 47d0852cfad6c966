// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package catalog

import "github.com/tomtom215/cinequery/internal/models"

// seedItems returns the built-in catalog. In production this would be fed
// by a metadata provider such as TMDB; the built-in set covers the streaming
// platforms the service launched with.
func seedItems() []models.ContentItem {
	return []models.ContentItem{
		{
			ID:          "1",
			Title:       "Star Wars: Uma Nova Esperança",
			Description: "Épica batalha espacial com sabres de luz e a Força",
			Year:        1977,
			Genre:       "Ficção Científica",
			Type:        "Filme",
			Director:    "George Lucas",
			Cast:        []string{"Mark Hamill", "Harrison Ford", "Carrie Fisher"},
			Platform:    "Disney+",
			Rating:      8.6,
			PosterURL:   "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?w=400&h=600&fit=crop",
		},
		{
			ID:          "2",
			Title:       "Na Linha de Fogo",
			Description: "Clint Eastwood protege o presidente dos EUA",
			Year:        1993,
			Genre:       "Thriller",
			Type:        "Filme",
			Director:    "Wolfgang Petersen",
			Cast:        []string{"Clint Eastwood", "John Malkovich"},
			Platform:    "Prime Video",
			Rating:      7.2,
			PosterURL:   "https://images.unsplash.com/photo-1574267432644-f610a4b3a93a?w=400&h=600&fit=crop",
		},
		{
			ID:          "3",
			Title:       "50 Primeiros Encontros",
			Description: "Comédia romântica no Hawaii com Adam Sandler",
			Year:        2004,
			Genre:       "Comédia Romântica",
			Type:        "Filme",
			Director:    "Peter Segal",
			Cast:        []string{"Adam Sandler", "Drew Barrymore"},
			Platform:    "Netflix",
			Rating:      6.8,
			PosterURL:   "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=600&fit=crop",
		},
		{
			ID:          "4",
			Title:       "Guardiões da Galáxia",
			Description: "Aventura espacial com armas futuristas e batalhas intergalácticas",
			Year:        2014,
			Genre:       "Ficção Científica",
			Type:        "Filme",
			Director:    "James Gunn",
			Cast:        []string{"Chris Pratt", "Zoe Saldana", "Dave Bautista"},
			Platform:    "Disney+",
			Rating:      8.0,
			PosterURL:   "https://images.unsplash.com/photo-1608889825205-eebdb9fc5806?w=400&h=600&fit=crop",
		},
		{
			ID:          "5",
			Title:       "Interestelar",
			Description: "Viagem espacial épica através de buracos negros",
			Year:        2014,
			Genre:       "Ficção Científica",
			Type:        "Filme",
			Director:    "Christopher Nolan",
			Cast:        []string{"Matthew McConaughey", "Anne Hathaway"},
			Platform:    "Prime Video",
			Rating:      8.7,
			PosterURL:   "https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=400&h=600&fit=crop",
		},
		{
			ID:          "6",
			Title:       "Ressaca em Las Vegas",
			Description: "Comédia hilária sobre uma despedida de solteiro",
			Year:        2009,
			Genre:       "Comédia",
			Type:        "Filme",
			Director:    "Todd Phillips",
			Cast:        []string{"Bradley Cooper", "Ed Helms", "Zach Galifianakis"},
			Platform:    "Netflix",
			Rating:      7.7,
			PosterURL:   "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=400&h=600&fit=crop",
		},
		{
			ID:          "7",
			Title:       "Breaking Bad",
			Description: "Série dramática sobre um professor que se torna produtor de metanfetamina",
			Year:        2008,
			Genre:       "Drama",
			Type:        "Série",
			Director:    "Vince Gilligan",
			Cast:        []string{"Bryan Cranston", "Aaron Paul"},
			Platform:    "Netflix",
			Rating:      9.5,
			PosterURL:   "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=600&fit=crop",
		},
		{
			ID:          "8",
			Title:       "The Mandalorian",
			Description: "Série de Star Wars sobre um caçador de recompensas",
			Year:        2019,
			Genre:       "Ficção Científica",
			Type:        "Série",
			Director:    "Jon Favreau",
			Cast:        []string{"Pedro Pascal"},
			Platform:    "Disney+",
			Rating:      8.7,
			PosterURL:   "https://images.unsplash.com/photo-1598899134739-24c46f58b8c0?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp1",
			Title:       "Pantanal",
			Description: "Novela sobre amor, vingança e natureza no coração do Brasil",
			Year:        2022,
			Genre:       "Novela",
			Type:        "Novela",
			Platform:    "Globoplay",
			Rating:      9.2,
			PosterURL:   "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp2",
			Title:       "Travessia",
			Description: "Drama sobre identidade, amor e recomeços",
			Year:        2022,
			Genre:       "Novela",
			Type:        "Novela",
			Platform:    "Globoplay",
			Rating:      7.8,
			PosterURL:   "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp3",
			Title:       "Todas as Flores",
			Description: "Minissérie sobre vingança e segredos de família",
			Year:        2022,
			Genre:       "Drama",
			Type:        "Minissérie",
			Platform:    "Globoplay",
			Rating:      8.5,
			PosterURL:   "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp4",
			Title:       "Verdades Secretas",
			Description: "Série dramática sobre o mundo da moda e seus segredos obscuros",
			Year:        2021,
			Genre:       "Drama",
			Type:        "Série",
			Platform:    "Globoplay",
			Rating:      8.9,
			PosterURL:   "https://images.unsplash.com/photo-1509631179647-0177331693ae?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp5",
			Title:       "Cidade Invisível",
			Description: "Série de fantasia brasileira sobre folclore urbano",
			Year:        2021,
			Genre:       "Fantasia",
			Type:        "Série",
			Platform:    "Globoplay",
			Rating:      7.5,
			PosterURL:   "https://images.unsplash.com/photo-1518676590629-3dcbd9c5a5c9?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp6",
			Title:       "Sob Pressão",
			Description: "Série médica dramática sobre o cotidiano de um hospital público",
			Year:        2016,
			Genre:       "Drama Médico",
			Type:        "Série",
			Platform:    "Globoplay",
			Rating:      8.7,
			PosterURL:   "https://images.unsplash.com/photo-1516549655169-df83a0774514?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp7",
			Title:       "Aruanas",
			Description: "Série sobre ativismo ambiental na Amazônia",
			Year:        2019,
			Genre:       "Drama",
			Type:        "Série",
			Platform:    "Globoplay",
			Rating:      8.1,
			PosterURL:   "https://images.unsplash.com/photo-1511497584788-876760111969?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp8",
			Title:       "Irmandade",
			Description: "Série policial sobre crime organizado e corrupção",
			Year:        2019,
			Genre:       "Policial",
			Type:        "Série",
			Platform:    "Globoplay",
			Rating:      7.9,
			PosterURL:   "https://images.unsplash.com/photo-1574267432644-f610a4b3a93a?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp9",
			Title:       "Justiça",
			Description: "Minissérie sobre o sistema judiciário brasileiro",
			Year:        2016,
			Genre:       "Drama",
			Type:        "Minissérie",
			Platform:    "Globoplay",
			Rating:      8.4,
			PosterURL:   "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=400&h=600&fit=crop",
		},
		{
			ID:          "gp10",
			Title:       "O Rebu",
			Description: "Minissérie de suspense sobre uma festa que termina em tragédia",
			Year:        2014,
			Genre:       "Suspense",
			Type:        "Minissérie",
			Platform:    "Globoplay",
			Rating:      8.0,
			PosterURL:   "https://images.unsplash.com/photo-1598899134739-24c46f58b8c0?w=400&h=600&fit=crop",
		},
	}
}
