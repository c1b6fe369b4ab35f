package nav

// Link is an outbound contact link.
type Link struct {
	Label    string
	Href     string
	Title    string
	External bool
}

const (
	InstagramURL    = "https://www.instagram.com/horadevestirse.ar"
	InstagramHandle = "@horadevestirse.ar"
	Email           = "horadevestirse.ar@gmail.com"
)

// Instagram opens in a new browsing context.
var Instagram = Link{Label: "Instagram " + InstagramHandle, Href: InstagramURL, External: true}

// Contact lists the footer contact entries in display order. The WhatsApp
// link has no number yet.
var Contact = []Link{
	Instagram,
	{Label: "(agregar link)", Href: "#", Title: "Reemplazá con tu link wa.me"},
	{Label: Email, Href: "mailto:" + Email},
}
