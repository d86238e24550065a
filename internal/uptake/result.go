package uptake

// Row is one emitted time step: elapsed time plus the seven pressures.
type Row struct {
	Time  float64 `csv:"time" json:"time"`
	Pinsp float64 `csv:"pinsp" json:"pinsp"`
	Palv  float64 `csv:"palv" json:"palv"`
	Part  float64 `csv:"part" json:"part"`
	Pvrg  float64 `csv:"pvrg" json:"pvrg"`
	Pmus  float64 `csv:"pmus" json:"pmus"`
	Pfat  float64 `csv:"pfat" json:"pfat"`
	Pcv   float64 `csv:"pcv" json:"pcv"`
}

// State returns the row's pressures as a state value.
func (r Row) State() PartialPressures {
	return PartialPressures{r.Pinsp, r.Palv, r.Part, r.Pvrg, r.Pmus, r.Pfat, r.Pcv}
}

// Result is the accumulated output table, one row per step in increasing
// time order. It is produced once by a run and read-only afterwards.
type Result struct {
	Rows []Row
}

func (r *Result) Len() int { return len(r.Rows) }

// Final returns the last row, or the zero row for an empty result.
func (r *Result) Final() Row {
	if len(r.Rows) == 0 {
		return Row{}
	}
	return r.Rows[len(r.Rows)-1]
}

// Times returns the time column.
func (r *Result) Times() []float64 {
	ts := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		ts[i] = row.Time
	}
	return ts
}

// SeriesNames lists the pressure columns in row order.
func SeriesNames() []string { return StateSchema() }

// Series returns one pressure column by schema name ("palv", "pcv", ...).
// Unknown names return nil.
func (r *Result) Series(name string) []float64 {
	pick := func(get func(Row) float64) []float64 {
		vs := make([]float64, len(r.Rows))
		for i, row := range r.Rows {
			vs[i] = get(row)
		}
		return vs
	}
	switch name {
	case "pinsp":
		return pick(func(row Row) float64 { return row.Pinsp })
	case "palv":
		return pick(func(row Row) float64 { return row.Palv })
	case "part":
		return pick(func(row Row) float64 { return row.Part })
	case "pvrg":
		return pick(func(row Row) float64 { return row.Pvrg })
	case "pmus":
		return pick(func(row Row) float64 { return row.Pmus })
	case "pfat":
		return pick(func(row Row) float64 { return row.Pfat })
	case "pcv":
		return pick(func(row Row) float64 { return row.Pcv })
	}
	return nil
}
