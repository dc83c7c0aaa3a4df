package extract

// Platform describes a known social-media platform: the registered domain
// used for matching and the display metadata attached to accepted links.
type Platform struct {
	Name   string
	Domain string
	Icon   string
}

// Platforms is the fixed, ordered platform table. Links are tested against it
// top to bottom and the first domain match wins, so "twitter.com" must come
// before "x.com" style overlaps are resolved by position, not by specificity.
// Adding a platform is a data addition here, nothing else changes.
var Platforms = []Platform{
	{Name: "Facebook", Domain: "facebook.com", Icon: "📘"},
	{Name: "LinkedIn", Domain: "linkedin.com", Icon: "💼"},
	{Name: "Twitter", Domain: "twitter.com", Icon: "🐦"},
	{Name: "X", Domain: "x.com", Icon: "✖️"},
	{Name: "Instagram", Domain: "instagram.com", Icon: "📷"},
	{Name: "TikTok", Domain: "tiktok.com", Icon: "🎵"},
	{Name: "YouTube", Domain: "youtube.com", Icon: "🎬"},
	{Name: "Pinterest", Domain: "pinterest.com", Icon: "📌"},
	{Name: "GitHub", Domain: "github.com", Icon: "🐙"},
}

// excludedKeywords flag share-widget and auth-flow URLs regardless of which
// platform matched. Checked as substrings of the lowercased full URL.
var excludedKeywords = []string{
	"sharer",
	"share",
	"intent",
	"login",
	"signup",
	"register",
}

// genericPaths are first path segments that point at platform navigation
// pages rather than profiles.
var genericPaths = []string{
	"login",
	"signup",
	"register",
	"help",
	"about",
	"privacy",
	"terms",
	"settings",
	"explore",
	"search",
}
