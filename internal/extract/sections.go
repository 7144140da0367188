package extract

import "encoding/xml"

// RawStatement is one decoded share-holdings extract, field values exactly
// as they appear in the document. Normalization happens later.
type RawStatement struct {
	XMLName xml.Name `xml:"extract_contract_participation_share_holdings"`

	Statement RawDetailsStatement `xml:"details_statement"`
	Request   RawDetailsRequest   `xml:"details_request"`
	Land      RawLandRecord       `xml:"land_record"`

	Rights    []RawRightRecord    `xml:"right_records>right_record"`
	Restricts []RawRestrictRecord `xml:"restrict_records>restrict_record"`
	Deals     []RawDealRecord     `xml:"deal_records>deal_record"`
}

type RawDetailsStatement struct {
	RegistrationOrgan  string `xml:"organ_registr_rights"`
	DateFormation      string `xml:"date_formation"`
	RegistrationNumber string `xml:"registration_number"`
}

type RawDetailsRequest struct {
	DateReceived            string `xml:"date_received_request"`
	DateReceivedByAuthority string `xml:"date_receipt_request_reg_authority_rights"`
}

type RawLandRecord struct {
	CadNumber       string `xml:"object>common_data>cad_number"`
	ReadableAddress string `xml:"address_location>address>readable_address"`
	CategoryCode    string `xml:"params>category>type>code"`
	CategoryValue   string `xml:"params>category>type>value"`
	PermittedUse    string `xml:"params>permitted_use>permitted_use_established>by_document"`
	Area            string `xml:"params>area>value"`
}

type RawRightRecord struct {
	RegistrationDate string `xml:"record_info>registration_date"`
	RightNumber      string `xml:"right_data>right_number"`
	RightTypeCode    string `xml:"right_data>right_type>code"`
	RightType        string `xml:"right_data>right_type>value"`

	Holders   []RawHolder        `xml:"right_holders>right_holder"`
	Documents []RawUnderlyingDoc `xml:"underlying_documents>underlying_document"`
}

type RawHolder struct {
	Name string `xml:"legal_entity>entity>resident>name"`
	INN  string `xml:"legal_entity>entity>resident>inn"`
	OGRN string `xml:"legal_entity>entity>resident>ogrn"`
}

type RawRestrictRecord struct {
	RegistrationDate string `xml:"record_info>registration_date"`

	RestrictionNumber   string `xml:"restrictions_encumbrances_data>restriction_encumbrance_number"`
	RestrictionTypeCode string `xml:"restrictions_encumbrances_data>restriction_encumbrance_type>code"`
	RestrictionType     string `xml:"restrictions_encumbrances_data>restriction_encumbrance_type>value"`
	StartDate           string `xml:"restrictions_encumbrances_data>period>period_info>start_date"`
	DealValidityTime    string `xml:"restrictions_encumbrances_data>period>period_info>deal_validity_time"`
	MortgageFlag        string `xml:"restrictions_encumbrances_data>period>period_info>transfer_deadline"`
	GuaranteePeriod     string `xml:"restrictions_encumbrances_data>period>period_info>guarantee_period"`

	// Restriction holders carry the bank behind a mortgage.
	Holders   []RawHolder        `xml:"right_holders>right_holder"`
	Documents []RawUnderlyingDoc `xml:"underlying_documents>underlying_document"`
}

type RawDealRecord struct {
	RegistrationDate string `xml:"record_info>registration_date"`
	DealNumber       string `xml:"deal_number"`
	DealTypeCode     string `xml:"deal_type>code"`
	DealTypeValue    string `xml:"deal_type>value"`

	FirstDDUDate string `xml:"deal_data>subject>share_subject_description>house_descriptions>house_description>first_ddu_date"`
	ObjectType   string `xml:"deal_data>subject>share_subject_description>house_descriptions>house_description>room_descriptions>room_description>room_name"`
	ObjectNumber string `xml:"deal_data>subject>share_subject_description>house_descriptions>house_description>room_descriptions>room_description>room_number"`
	FloorNumber  string `xml:"deal_data>subject>share_subject_description>house_descriptions>house_description>room_descriptions>room_description>floor_number"`
	ObjectArea   string `xml:"deal_data>subject>share_subject_description>house_descriptions>house_description>room_descriptions>room_description>room_area"`

	GuaranteePeriod string `xml:"deal_data>subject>share_subject_description>house_descriptions>house_description>room_descriptions>room_description>guarantee_period"`
	MortgageFlag    string `xml:"deal_data>subject>share_subject_description>house_descriptions>house_description>room_descriptions>room_description>transfer_deadline"`
	Bank            string `xml:"deal_data>subject>share_subject_description>bank"`

	Parties   []RawDealParty     `xml:"parties>party"`
	Documents []RawUnderlyingDoc `xml:"underlying_documents>underlying_document"`
}

type RawDealParty struct {
	PartyTypeCode  string `xml:"party_type>code"`
	PartyTypeValue string `xml:"party_type>value"`
	PartyInfo      string `xml:"party_info"`
	ConcessionMark string `xml:"concession_mark"`
}

type RawUnderlyingDoc struct {
	Code       string `xml:"document_code>code"`
	CodeValue  string `xml:"document_code>value"`
	Name       string `xml:"document_name"`
	Number     string `xml:"document_number"`
	Date       string `xml:"document_date"`
	DealNumber string `xml:"deal_registered_number>number"`
	DealDate   string `xml:"deal_registered_date"`
	DealOrgan  string `xml:"deal_registered_organ"`
}
