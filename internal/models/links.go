package models

// NavLink is a single entry in a navigation link set
type NavLink struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// SocialLink points at one of the brand's social profiles
type SocialLink struct {
	Href string `json:"href" yaml:"href"`
	Icon string `json:"icon" yaml:"icon"`
	Alt  string `json:"alt" yaml:"alt"`
}

// DefaultSocialLinks is the fixed set of profiles shown in the header
var DefaultSocialLinks = []SocialLink{
	{
		Href: "https://www.instagram.com/natnails_profesional/",
		Icon: "/icons/instagram-brands-solid-full.svg",
		Alt:  "Instagram",
	},
	{
		Href: "https://www.tiktok.com/@natalia_natnails",
		Icon: "/icons/tiktok-brands-solid-full.svg",
		Alt:  "TikTok",
	},
	{
		Href: "https://wa.link/emgwzy",
		Icon: "/icons/whatsapp-brands-solid-full.svg",
		Alt:  "WhatsApp",
	},
	{
		Href: "https://linktr.ee/natnails_profesional",
		Icon: "/icons/linktree-brands-solid-full.svg",
		Alt:  "Linktree",
	},
}
