package openai

import (
	"fmt"
	"strings"

	"github.com/rockerto/rigbot-go/tenant"
)

// buildSystemPrompt grounds the assistant in one tenant's business profile.
// The model only knows what the owner wrote: hours, pricing and contact
// text. Scheduling questions never reach this path.
func buildSystemPrompt(p tenant.Profile) string {
	name := p.BusinessName
	if name == "" {
		name = "el negocio"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Eres el asistente virtual de %s y respondes a visitantes del sitio web.\n\n", name)

	b.WriteString("REGLAS:\n")
	b.WriteString("- Responde siempre en español, en tono cercano y breve (máximo 2 párrafos).\n")
	b.WriteString("- Responde sólo con la información del negocio entregada abajo. Si no sabes algo, dilo y ofrece los datos de contacto.\n")
	b.WriteString("- Si la persona quiere ser contactada o dejar sus datos, usa la herramienta capture_lead.\n")
	b.WriteString("- Nunca inventes precios, horarios ni promociones.\n\n")

	b.WriteString("INFORMACIÓN DEL NEGOCIO:\n")
	if p.HoursText != "" {
		fmt.Fprintf(&b, "Horario: %s\n", p.HoursText)
	}
	if p.Pricing != "" {
		fmt.Fprintf(&b, "Precios: %s\n", p.Pricing)
	}
	if p.Contact != "" {
		fmt.Fprintf(&b, "Contacto: %s\n", p.Contact)
	}

	return b.String()
}
