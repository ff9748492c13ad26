package request

import "strings"

// ReportQuery carries the report query parameters. The Spanish names used by
// older clients (fecha, desde, hasta, periodo) are accepted as aliases; the
// English name wins when both are sent.
type ReportQuery struct {
	Date    string `form:"date"`
	Fecha   string `form:"fecha"`
	From    string `form:"from"`
	Desde   string `form:"desde"`
	To      string `form:"to"`
	Hasta   string `form:"hasta"`
	Period  string `form:"period"`
	Periodo string `form:"periodo"`
}

func (q ReportQuery) ResolveDate() string {
	return firstNonBlank(q.Date, q.Fecha)
}

func (q ReportQuery) ResolveFrom() string {
	return firstNonBlank(q.From, q.Desde)
}

func (q ReportQuery) ResolveTo() string {
	return firstNonBlank(q.To, q.Hasta)
}

func (q ReportQuery) ResolvePeriod() string {
	return firstNonBlank(q.Period, q.Periodo)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
