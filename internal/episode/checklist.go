package episode

// ChecklistHeading is the section heading appended above a checklist
// batch on an episode page.
const ChecklistHeading = "Checklist produkcyjny"

// DefaultChecklist is the standard production run-through for an episode,
// in execution order.
var DefaultChecklist = []string{
	"Opracowanie konspektu i scenariusza",
	"Kontakt z gościem / potwierdzenie terminu",
	"Research (osobowy i merytoryczny)",
	"Przygotowanie i test sprzętu",
	"Nagranie odcinka",
	"Zgranie materiału z karty",
	"Montaż i normalizacja głośności",
	"Opis odcinka + metadane",
	"Materiały promocyjne i publikacja",
}
