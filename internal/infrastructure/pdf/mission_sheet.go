// Package pdf genera la hoja de misión en A4.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: CargoPilot            │  Código misión + estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: empresa / contacto / teléfono / dirección          │
//	│  TRAYECTO: lugares, fechas y horas, distancias, carburante   │
//	│  EQUIPO: conductores y vehículos de salida y llegada         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 18, Green: 52, Blue: 86}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const empty = "—"

var _ ports.MissionPDFGenerator = (*MissionSheetGenerator)(nil)

// MissionSheetGenerator implementa ports.MissionPDFGenerator con Maroto v2.
type MissionSheetGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMissionSheetGenerator números con formato francés (1 234,50).
func NewMissionSheetGenerator() *MissionSheetGenerator {
	return &MissionSheetGenerator{printer: message.NewPrinter(language.French), now: time.Now}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *MissionSheetGenerator) Generate(sheet ports.MissionSheet) ([]byte, error) {
	if sheet.Mission == nil {
		return nil, fmt.Errorf("pdf: misión vacía")
	}
	mission := sheet.Mission

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fiche mission "+mission.MissionCode, true).
		WithAuthor("CargoPilot", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(mission))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle("CLIENT"))
	m.AddRows(g.clientRows(sheet.Client, mission)...)
	m.AddRows(sectionTitle("TRAJET"))
	m.AddRows(g.routeRows(mission)...)
	m.AddRows(sectionTitle("ÉQUIPAGE"))
	m.AddRows(crewRows(mission)...)
	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Document généré le "+g.now().Format("02/01/2006 15:04"), props.Text{
			Size: 7, Align: align.Center, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(mission *entity.MissionDetail) core.Row {
	subtitle := string(mission.MissionType)
	if mission.ChargementType != nil {
		subtitle += " · " + string(*mission.ChargementType)
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New("CargoPilot", props.Text{Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1}),
			text.New("Fiche mission", props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(mission.MissionCode, props.Text{Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 1}),
			text.New("Statut : "+string(mission.Status), props.Text{Size: 9, Align: align.Right, Top: 8}),
			text.New(subtitle, props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

func (g *MissionSheetGenerator) clientRows(client *entity.Client, mission *entity.MissionDetail) []core.Row {
	if client == nil {
		return []core.Row{kvRow("Entreprise", nonEmpty(mission.ClientName))}
	}
	return []core.Row{
		kvRow("Entreprise", nonEmpty(client.CompanyName)),
		kvRow("Contact", nonEmpty(client.ContactName)),
		kvRow("Téléphone", nonEmpty(client.PhoneNumber)),
		kvRow("Adresse", nonEmpty(client.Address)),
	}
}

func (g *MissionSheetGenerator) routeRows(mission *entity.MissionDetail) []core.Row {
	return []core.Row{
		kvRow("Départ", nonEmpty(mission.LieuDepart)),
		kvRow("Arrivée", nonEmpty(mission.LieuArrivee)),
		kvRow("Date de départ", dateTime(mission.DateDepart, mission.HeureDepartEstimee)),
		kvRow("Présence obligatoire", nonEmpty(mission.HeurePresenceObligatoire)),
		kvRow("Arrivée estimée", dateTime(mission.DateArriveeEstimee, mission.HeureArriveeEstimee)),
		kvRow("Arrivée réelle", dateTime(mission.DateArriveeReelle, "")),
		kvRow("Distance estimée", g.quantity(mission.DistanceEstimeeKm, "km")),
		kvRow("Distance réelle", g.quantity(mission.DistanceReelleKm, "km")),
		kvRow("Carburant consommé", g.quantity(mission.CarburantConsommeL, "L")),
	}
}

func crewRows(mission *entity.MissionDetail) []core.Row {
	return []core.Row{
		kvRow("Chauffeur départ", nonEmpty(mission.ChauffeurDepartName)),
		kvRow("Véhicule départ", nonEmpty(mission.VehiculeDepartImmat)),
		kvRow("Chauffeur arrivée", nonEmpty(mission.ChauffeurArriveeName)),
		kvRow("Véhicule arrivée", nonEmpty(mission.VehiculeArriveeImmat)),
	}
}

func kvRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1})),
		col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1})),
	)
}

// ── Formato ───────────────────────────────────────────────────────────────────

// quantity 2 decimales con separadores franceses; empty si no hay valor.
func (g *MissionSheetGenerator) quantity(d *decimal.Decimal, unit string) string {
	if d == nil {
		return empty
	}
	return g.printer.Sprintf("%.2f %s", d.InexactFloat64(), unit)
}

func dateTime(d *time.Time, hour string) string {
	if d == nil {
		return empty
	}
	s := d.Format("02/01/2006")
	if hour != "" {
		s += " " + hour
	} else if d.Hour() != 0 || d.Minute() != 0 {
		s += " " + d.Format("15:04")
	}
	return s
}

func nonEmpty(s string) string {
	if s == "" {
		return empty
	}
	return s
}
