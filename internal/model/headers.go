package model

// Column names the ingestion collaborator must supply verbatim.
const (
	ColClaimNumber   = "Claim Number"
	ColClaimEdits    = "Claim Edits"
	ColClaimNotes    = "Claim Notes"
	ColClaimStatus   = "Claim Status"
	ColClaimState    = "Claim State"
	ColCleanAge      = "Clean Age"
	ColAge           = "Age"
	ColPayer         = "Payer"
	ColNetworkStatus = "NetworkStatus"
	ColDSNP          = "DSNP or Non DSNP"
	ColReceivedDate  = "Received Date"
	ColDOSFrom       = "DOSFromDate"
	ColDOSTo         = "DOSToDate"
)

// RequiredHeaders is the fixed set of logical fields ingestion needs.
// A missing header is a schema error; ingestion never proceeds partially.
var RequiredHeaders = []string{
	ColClaimNumber,
	ColClaimEdits,
	ColClaimNotes,
	ColClaimStatus,
	ColClaimState,
	ColCleanAge,
	ColAge,
	ColPayer,
	ColNetworkStatus,
	ColDSNP,
	ColReceivedDate,
	ColDOSFrom,
	ColDOSTo,
}

// PVWorkColumns is the reduced non-PHI column set for PV workload exports.
var PVWorkColumns = []string{
	ColPayer,
	"Billing Provider",
	"Billing Provider Tax ID",
	"Billing Provider NPI",
	"ProviderFullName",
	"ProviderNPI",
	ColNetworkStatus,
	"Plan Name",
	ColClaimEdits,
	ColClaimNotes,
}

// DateColumns are written as date-serial cells by the export collaborator
// instead of plain text.
var DateColumns = []string{ColReceivedDate, ColDOSFrom, ColDOSTo}

// IsDateColumn reports whether header is one of the date-valued columns.
func IsDateColumn(header string) bool {
	for _, c := range DateColumns {
		if c == header {
			return true
		}
	}
	return false
}
