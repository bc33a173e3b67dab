package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// Estilos de la consola. Con Color=false se reemplazan por estilos vacíos.
type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Err   lipgloss.Style
	Dim   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Label: lipgloss.NewStyle().Bold(true),
		Err:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// icon elige el símbolo de cada variante de interacción. El type switch
// es exhaustivo sobre el tipo suma.
func icon(it entity.Interaction) string {
	switch it.(type) {
	case *entity.Call:
		return "📞"
	case *entity.Meeting:
		return "🤝"
	case *entity.Message:
		return "💬"
	case *entity.Email:
		return "✉️"
	case *entity.Quote:
		return "💰"
	default:
		return "•"
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "nunca"
	}
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}

func (c *Console) renderClient(cl *entity.Client) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s #%d\n", c.st.Title.Render(cl.FullName()), cl.ID)
	fmt.Fprintf(&sb, "  %s %s | %s %s\n", c.st.Label.Render("Tel:"), cl.Phone, c.st.Label.Render("Email:"), cl.Email)
	fmt.Fprintf(&sb, "  %s %s | %s %s\n", c.st.Label.Render("Género:"), cl.Gender, c.st.Label.Render("Nacimiento:"), formatDate(cl.BirthDate))
	if cl.SellerAssigned != nil {
		fmt.Fprintf(&sb, "  %s %s (#%d)\n", c.st.Label.Render("Vendedor:"), cl.SellerAssigned.Login, cl.SellerAssigned.ID)
	}
	if len(cl.Tags) > 0 {
		names := make([]string, 0, len(cl.Tags))
		for _, t := range cl.Tags {
			names = append(names, t.Name)
		}
		fmt.Fprintf(&sb, "  %s %s\n", c.st.Label.Render("Etiquetas:"), strings.Join(names, ", "))
	}
	fmt.Fprintf(&sb, "  %s %d | %s $%s | %s %s\n",
		c.st.Label.Render("Interacciones:"), len(cl.Interactions),
		c.st.Label.Render("Ventas:"), cl.TotalSales(),
		c.st.Label.Render("Último contacto:"), formatDate(cl.LatestInteractionDate()))
	return sb.String()
}

func (c *Console) renderInteraction(index int, it entity.Interaction) string {
	line := fmt.Sprintf("  [%d] %s %s %s — %s", index, icon(it), formatDate(it.When()), it.Kind(), it.Topic())
	switch v := it.(type) {
	case *entity.Call:
		line += fmt.Sprintf(" (%s)", v.Direction)
	case *entity.Meeting:
		line += fmt.Sprintf(" (en %s)", v.Place)
	case *entity.Message:
		line += fmt.Sprintf(" (%s → %s)", v.Sender, v.Recipient)
	case *entity.Email:
		line += fmt.Sprintf(" (%s → %s: %s)", v.Sender, v.Recipient, v.Subject)
	case *entity.Quote:
		line += fmt.Sprintf(" ($%s, %s)", v.Amount, v.Detail)
	}
	if note := it.Note(); note != "" {
		line += "\n      " + c.st.Dim.Render("Nota: "+note)
	}
	return line
}

func (c *Console) renderDashboard(sum dto.DashboardSummary) string {
	var sb strings.Builder
	sb.WriteString(c.st.Title.Render("Dashboard") + "\n")
	fmt.Fprintf(&sb, "%s %d\n", c.st.Label.Render("Clientes:"), sum.TotalClients)

	sb.WriteString(c.st.Label.Render("Actividad reciente:") + "\n")
	if len(sum.Recent) == 0 {
		sb.WriteString("  " + c.st.Dim.Render("sin interacciones") + "\n")
	}
	for _, r := range sum.Recent {
		fmt.Fprintf(&sb, "  %s %s %s — %s (%s)\n",
			icon(r.Interaction), formatDate(r.Interaction.When()), r.Interaction.Kind(),
			r.Interaction.Topic(), r.Client.FullName())
	}

	sb.WriteString(c.st.Label.Render("Próximas reuniones:") + "\n")
	if len(sum.UpcomingMeetings) == 0 {
		sb.WriteString("  " + c.st.Dim.Render("sin reuniones agendadas") + "\n")
	}
	for _, m := range sum.UpcomingMeetings {
		fmt.Fprintf(&sb, "  🤝 %s en %s — %s (%s)\n",
			formatDate(m.Meeting.When()), m.Meeting.Place, m.Meeting.Topic(), m.Client.FullName())
	}
	return sb.String()
}
