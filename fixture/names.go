// Copyright (C) 2025 Cohera Authors.

package fixture

var usernames = []string{
	"amara_k",
	"bjorn.dev",
	"chenwei",
	"dani-r",
	"esperanza",
	"farid87",
	"greta.m",
	"hiro_t",
	"imani",
	"jonas.l",
	"kavya",
	"leilani",
	"mateo_v",
	"nadia.s",
	"oluwaseun",
	"priya_d",
}

var communityAdjectives = []string{
	"Quiet",
	"Northern",
	"Amber",
	"Wandering",
	"Verdant",
	"Late-Night",
	"Open",
	"Analog",
	"Weekly",
	"Slow",
}

var communityNouns = []string{
	"Orchard",
	"Workshop",
	"Reading Room",
	"Garden",
	"Archive",
	"Commons",
	"Observatory",
	"Kitchen",
	"Darkroom",
	"Atelier",
}

var topicTitles = []string{
	"Introductions: tell us about yourself",
	"What are you working on this week?",
	"Show and tell: recent projects",
	"Monthly reading thread",
	"Tips for new members",
	"Upcoming meetups and events",
	"Favorite tools and workflows",
	"Questions that don't need their own thread",
}
