package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/bcdxn/f1cal/internal/domain"
	"github.com/bcdxn/f1cal/internal/i18n"
)

func newDriversTable(l i18n.Locale, standings domain.DriverStandings) table.Model {
	rows := make([]table.Row, 0, len(standings.Standings))
	for _, st := range standings.Standings {
		constructor := ""
		if n := len(st.Constructors); n > 0 {
			constructor = st.Constructors[n-1].Name
		}
		rows = append(rows, table.NewRow(table.RowData{
			"position":    position(st.PositionText, st.Position),
			"driver":      st.Driver.Name(),
			"nationality": l.Nationality(st.Driver.Nationality),
			"constructor": constructor,
			"points":      l.Points(st.Points),
			"wins":        st.Wins,
		}))
	}
	return newTable([]table.Column{
		table.NewColumn("position", l.T(i18n.MsgPosition), 5),
		table.NewColumn("driver", l.T(i18n.MsgDriver), 24).WithStyle(leftAligned),
		table.NewColumn("nationality", l.T(i18n.MsgNationality), 18).WithStyle(leftAligned),
		table.NewColumn("constructor", l.T(i18n.MsgConstructor), 20).WithStyle(leftAligned),
		table.NewColumn("points", l.T(i18n.MsgPoints), 8),
		table.NewColumn("wins", l.T(i18n.MsgWins), 6),
	}, rows)
}

func newConstructorsTable(l i18n.Locale, standings domain.ConstructorStandings) table.Model {
	rows := make([]table.Row, 0, len(standings.Standings))
	for _, st := range standings.Standings {
		rows = append(rows, table.NewRow(table.RowData{
			"position":    position(st.PositionText, st.Position),
			"constructor": st.Constructor.Name,
			"nationality": l.Nationality(st.Constructor.Nationality),
			"points":      l.Points(st.Points),
			"wins":        st.Wins,
		}))
	}
	return newTable([]table.Column{
		table.NewColumn("position", l.T(i18n.MsgPosition), 5),
		table.NewColumn("constructor", l.T(i18n.MsgConstructor), 24).WithStyle(leftAligned),
		table.NewColumn("nationality", l.T(i18n.MsgNationality), 18).WithStyle(leftAligned),
		table.NewColumn("points", l.T(i18n.MsgPoints), 8),
		table.NewColumn("wins", l.T(i18n.MsgWins), 6),
	}, rows)
}

func newResultsTable(l i18n.Locale, result domain.RaceResult) table.Model {
	rows := make([]table.Row, 0, len(result.Results))
	for _, r := range result.Results {
		var driver any = r.Driver.Name()
		if r.FastestLapRank == 1 {
			driver = table.NewStyledCell(r.Driver.Name()+" ⏱", s.Purple)
		}
		timeStatus := r.Time
		if timeStatus == "" {
			timeStatus = r.Status
		}
		rows = append(rows, table.NewRow(table.RowData{
			"position":    position(r.PositionText, r.Position),
			"driver":      driver,
			"constructor": r.Constructor.Name,
			"grid":        r.Grid,
			"laps":        r.Laps,
			"time":        timeStatus,
			"points":      l.Points(r.Points),
		}))
	}
	return newTable([]table.Column{
		table.NewColumn("position", l.T(i18n.MsgPosition), 5),
		table.NewColumn("driver", l.T(i18n.MsgDriver), 24).WithStyle(leftAligned),
		table.NewColumn("constructor", l.T(i18n.MsgConstructor), 20).WithStyle(leftAligned),
		table.NewColumn("grid", l.T(i18n.MsgGrid), 6),
		table.NewColumn("laps", l.T(i18n.MsgLaps), 6),
		table.NewColumn("time", l.T(i18n.MsgTimeStatus), 14),
		table.NewColumn("points", l.T(i18n.MsgPoints), 8),
	}, rows).Focused(false).WithPageSize(len(rows) + 1)
}

var leftAligned = lipgloss.NewStyle().Align(lipgloss.Left)

func newTable(columns []table.Column, rows []table.Row) table.Model {
	return table.New(columns).
		WithRows(rows).
		WithBaseStyle(lipgloss.NewStyle().AlignHorizontal(lipgloss.Center)).
		Focused(true)
}

// position prefers the published label, which marks unclassified entries.
func position(text string, pos int) string {
	if text != "" {
		return text
	}
	if pos == 0 {
		return "-"
	}
	return strconv.Itoa(pos)
}
