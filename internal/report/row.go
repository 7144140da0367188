package report

// Row is one flattened report line: parcel attributes, the ownership
// summary, one deal (or blanks), and one restriction (or blanks). CSV and
// XLSX sinks both render rows through Values so their content is identical.
type Row struct {
	RowNumber int

	StatementNumber string
	CadNumber       string
	Address         string
	LandCategory    string
	PermittedUse    string
	Area            string

	HolderNames           string
	HolderINNs            string
	RightType             string
	RightNumber           string
	RightRegistrationDate string

	DealNumber           string
	DealType             string
	DealRegistrationDate string
	DealConcludedDate    string
	DealObjectType       string
	DealObjectNumber     string
	DealFloor            string
	DealObjectArea       string
	DealBank             string
	DealBankINN          string
	DealMortgageFlag     string
	DealGuaranteePeriod  string
	DealParties          string

	RestrictionNumber           string
	RestrictionType             string
	RestrictionRegistrationDate string
	RestrictionStartDate        string
	RestrictionGuaranteePeriod  string
	RestrictionBank             string
	RestrictionBankINN          string
	RestrictionMortgageFlag     string
}

// Columns is the report header, in output order.
func Columns() []string {
	return []string{
		"No",
		"Statement Number",
		"Cadastral Number",
		"Address",
		"Land Category",
		"Permitted Use",
		"Area (sq m)",
		"Right Holders",
		"Right Holder INNs",
		"Right Type",
		"Right Registration Number",
		"Right Registration Date",
		"Deal Number",
		"Deal Type",
		"Deal Registration Date",
		"Deal Conclusion Date",
		"Deal Object Type",
		"Deal Object Number",
		"Deal Object Floor",
		"Deal Object Area (sq m)",
		"Deal Bank",
		"Deal Bank INN",
		"Deal Mortgage Flag",
		"Deal Guarantee Period",
		"Deal Parties",
		"Restriction Number",
		"Restriction Type",
		"Restriction Registration Date",
		"Restriction Start Date",
		"Restriction Guarantee Period",
		"Restriction Bank",
		"Restriction Bank INN",
		"Restriction Mortgage Flag",
	}
}

// Values renders the row in the same order as Columns.
func (r Row) Values() []string {
	return []string{
		itoa(r.RowNumber),
		r.StatementNumber,
		r.CadNumber,
		r.Address,
		r.LandCategory,
		r.PermittedUse,
		r.Area,
		r.HolderNames,
		r.HolderINNs,
		r.RightType,
		r.RightNumber,
		r.RightRegistrationDate,
		r.DealNumber,
		r.DealType,
		r.DealRegistrationDate,
		r.DealConcludedDate,
		r.DealObjectType,
		r.DealObjectNumber,
		r.DealFloor,
		r.DealObjectArea,
		r.DealBank,
		r.DealBankINN,
		r.DealMortgageFlag,
		r.DealGuaranteePeriod,
		r.DealParties,
		r.RestrictionNumber,
		r.RestrictionType,
		r.RestrictionRegistrationDate,
		r.RestrictionStartDate,
		r.RestrictionGuaranteePeriod,
		r.RestrictionBank,
		r.RestrictionBankINN,
		r.RestrictionMortgageFlag,
	}
}
