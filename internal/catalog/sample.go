// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package catalog

import "github.com/tomtom215/reeltaste/internal/recommend"

// Sample returns the built-in demo catalog, normalized. It is used when no
// catalog file is configured, and covers both content kinds and multiple
// languages so every query path has data to work with.
func Sample() []recommend.Item {
	return NormalizeAll(sampleRaws)
}

var sampleRaws = []Raw{
	{
		Title:       "The Avengers",
		Year:        2012,
		Kind:        "movie",
		Genre:       "Action,Adventure,Sci-Fi",
		Language:    "English",
		Director:    "Joss Whedon",
		Actors:      "Robert Downey Jr.,Chris Evans,Scarlett Johansson",
		Rating:      8.0,
		Description: "Earth's mightiest heroes must come together to stop Loki and his army.",
		Duration:    "143 min",
		Country:     "USA",
	},
	{
		Title:       "The Dark Knight",
		Year:        2008,
		Kind:        "movie",
		Genre:       "Action,Crime,Drama",
		Language:    "English",
		Director:    "Christopher Nolan",
		Actors:      "Christian Bale,Heath Ledger,Aaron Eckhart",
		Rating:      9.0,
		Description: "Batman faces his greatest challenge when the mysterious Joker wreaks havoc on Gotham.",
		Duration:    "152 min",
		Country:     "USA",
	},
	{
		Title:       "Inception",
		Year:        2010,
		Kind:        "movie",
		Genre:       "Action,Adventure,Sci-Fi",
		Language:    "English",
		Director:    "Christopher Nolan",
		Actors:      "Leonardo DiCaprio,Joseph Gordon-Levitt,Elliot Page",
		Rating:      8.8,
		Description: "A thief who steals corporate secrets through dream-sharing technology.",
		Duration:    "148 min",
		Country:     "USA",
	},
	{
		Title:       "The Hangover",
		Year:        2009,
		Kind:        "movie",
		Genre:       "Comedy",
		Language:    "English",
		Director:    "Todd Phillips",
		Actors:      "Bradley Cooper,Ed Helms,Zach Galifianakis",
		Rating:      7.7,
		Description: "Three friends wake up from a bachelor party with no memory of the previous night.",
		Duration:    "100 min",
		Country:     "USA",
	},
	{
		Title:       "Superbad",
		Year:        2007,
		Kind:        "movie",
		Genre:       "Comedy",
		Language:    "English",
		Director:    "Greg Mottola",
		Actors:      "Jonah Hill,Michael Cera,Christopher Mintz-Plasse",
		Rating:      7.6,
		Description: "Two co-dependent high school seniors are forced to deal with separation anxiety.",
		Duration:    "113 min",
		Country:     "USA",
	},
	{
		Title:       "The Shawshank Redemption",
		Year:        1994,
		Kind:        "movie",
		Genre:       "Drama",
		Language:    "English",
		Director:    "Frank Darabont",
		Actors:      "Tim Robbins,Morgan Freeman,Bob Gunton",
		Rating:      9.3,
		Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption.",
		Duration:    "142 min",
		Country:     "USA",
	},
	{
		Title:       "The Godfather",
		Year:        1972,
		Kind:        "movie",
		Genre:       "Crime,Drama",
		Language:    "English",
		Director:    "Francis Ford Coppola",
		Actors:      "Marlon Brando,Al Pacino,James Caan",
		Rating:      9.2,
		Description: "The aging patriarch of an organized crime dynasty transfers control to his reluctant son.",
		Duration:    "175 min",
		Country:     "USA",
	},
	{
		Title:       "Pulp Fiction",
		Year:        1994,
		Kind:        "movie",
		Genre:       "Crime,Drama",
		Language:    "English",
		Director:    "Quentin Tarantino",
		Actors:      "John Travolta,Uma Thurman,Samuel L. Jackson",
		Rating:      8.9,
		Description: "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence.",
		Duration:    "154 min",
		Country:     "USA",
	},
	{
		Title:       "Forrest Gump",
		Year:        1994,
		Kind:        "movie",
		Genre:       "Drama,Romance",
		Language:    "English",
		Director:    "Robert Zemeckis",
		Actors:      "Tom Hanks,Robin Wright,Gary Sinise",
		Rating:      8.8,
		Description: "The presidencies of Kennedy and Johnson through the eyes of an Alabama man with a low IQ.",
		Duration:    "142 min",
		Country:     "USA",
	},
	{
		Title:       "3 Idiots",
		Year:        2009,
		Kind:        "movie",
		Genre:       "Comedy,Drama",
		Language:    "Hindi",
		Director:    "Rajkumar Hirani",
		Actors:      "Aamir Khan,Madhavan,Sharman Joshi",
		Rating:      8.4,
		Description: "Two friends search for their long lost companion who inspired them to think differently.",
		Duration:    "170 min",
		Country:     "India",
	},
	{
		Title:       "Dangal",
		Year:        2016,
		Kind:        "movie",
		Genre:       "Action,Biography,Drama",
		Language:    "Hindi",
		Director:    "Nitesh Tiwari",
		Actors:      "Aamir Khan,Sakshi Tanwar,Fatima Sana Shaikh",
		Rating:      8.3,
		Description: "Former wrestler Mahavir Singh Phogat trains his daughters to become world-class wrestlers.",
		Duration:    "161 min",
		Country:     "India",
	},
	{
		Title:       "Breaking Bad",
		Year:        2008,
		Kind:        "series",
		Genre:       "Crime,Drama,Thriller",
		Language:    "English",
		Director:    "Vince Gilligan",
		Actors:      "Bryan Cranston,Aaron Paul,Anna Gunn",
		Rating:      9.5,
		Description: "A chemistry teacher diagnosed with cancer turns to manufacturing methamphetamine.",
		Duration:    "5 seasons",
		Country:     "USA",
	},
	{
		Title:       "Stranger Things",
		Year:        2016,
		Kind:        "series",
		Genre:       "Drama,Fantasy,Horror",
		Language:    "English",
		Director:    "The Duffer Brothers",
		Actors:      "Millie Bobby Brown,Finn Wolfhard,Winona Ryder",
		Rating:      8.7,
		Description: "A young boy vanishes and a small town uncovers a mystery involving secret experiments.",
		Duration:    "4 seasons",
		Country:     "USA",
	},
	{
		Title:       "Sacred Games",
		Year:        2018,
		Kind:        "series",
		Genre:       "Action,Crime,Drama",
		Language:    "Hindi",
		Director:    "Anurag Kashyap,Vikramaditya Motwane",
		Actors:      "Saif Ali Khan,Nawazuddin Siddiqui,Radhika Apte",
		Rating:      8.6,
		Description: "A link in their pasts leads an honest cop to a fugitive gang boss whose cryptic warning spurs a race to save Mumbai.",
		Duration:    "2 seasons",
		Country:     "India",
	},
	{
		Title:       "Money Heist",
		Year:        2017,
		Kind:        "series",
		Genre:       "Action,Crime,Mystery",
		Language:    "Hindi Dubbed",
		Director:    "Alex Pina",
		Actors:      "Ursula Corbero,Alvaro Morte,Itziar Ituno",
		Rating:      8.2,
		Description: "An unusual group of robbers attempt to carry out the most perfect robbery in Spanish history.",
		Duration:    "5 seasons",
		Country:     "Spain",
	},
	{
		Title:       "The Family Man",
		Year:        2019,
		Kind:        "series",
		Genre:       "Action,Drama,Thriller",
		Language:    "Hindi",
		Director:    "Raj Nidimoru,Krishna D.K.",
		Actors:      "Manoj Bajpayee,Samantha Ruth Prabhu,Priyamani",
		Rating:      8.7,
		Description: "A middle-class man secretly working as an intelligence officer tries to balance family and duty.",
		Duration:    "2 seasons",
		Country:     "India",
	},
}
