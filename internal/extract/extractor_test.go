package extract

import (
	"errors"
	"strings"
	"testing"
)

const sampleExtract = `<?xml version="1.0" encoding="UTF-8"?>
<extract_contract_participation_share_holdings>
  <details_statement>
    <organ_registr_rights>Regional Registration Office</organ_registr_rights>
    <date_formation>2023-05-10</date_formation>
    <registration_number>99/2023/123456</registration_number>
  </details_statement>
  <details_request>
    <date_received_request>2023-05-01</date_received_request>
    <date_receipt_request_reg_authority_rights>2023-05-02</date_receipt_request_reg_authority_rights>
  </details_request>
  <land_record>
    <object>
      <common_data>
        <cad_number>77:01:0001001:10</cad_number>
      </common_data>
    </object>
    <address_location>
      <address>
        <readable_address>Moscow, Sample street 1</readable_address>
      </address>
    </address_location>
    <params>
      <category>
        <type>
          <code>003002000000</code>
          <value>Settlement lands</value>
        </type>
      </category>
      <permitted_use>
        <permitted_use_established>
          <by_document>Multi-storey residential construction</by_document>
        </permitted_use_established>
      </permitted_use>
      <area>
        <value>12500.5</value>
      </area>
    </params>
  </land_record>
  <right_records>
    <right_record>
      <record_info>
        <registration_date>2020-03-15T10:00:00Z</registration_date>
      </record_info>
      <right_data>
        <right_number>77:01:0001001:10-77/011/2020-1</right_number>
        <right_type>
          <code>001001000000</code>
          <value>Ownership</value>
        </right_type>
      </right_data>
      <right_holders>
        <right_holder>
          <legal_entity>
            <entity>
              <resident>
                <name>Developer LLC</name>
                <inn>7701234567</inn>
                <ogrn>1027700000000</ogrn>
              </resident>
            </entity>
          </legal_entity>
        </right_holder>
      </right_holders>
    </right_record>
  </right_records>
  <restrict_records>
    <restrict_record>
      <record_info>
        <registration_date>2021-06-20</registration_date>
      </record_info>
      <restrictions_encumbrances_data>
        <restriction_encumbrance_number>77:01:0001001:10-77/011/2021-5</restriction_encumbrance_number>
        <restriction_encumbrance_type>
          <code>022008000000</code>
          <value>Mortgage</value>
        </restriction_encumbrance_type>
        <period>
          <period_info>
            <start_date>2021-06-20</start_date>
            <transfer_deadline>yes</transfer_deadline>
          </period_info>
        </period>
      </restrictions_encumbrances_data>
      <right_holders>
        <right_holder>
          <legal_entity>
            <entity>
              <resident>
                <name>Big Bank</name>
                <inn>7709876543</inn>
              </resident>
            </entity>
          </legal_entity>
        </right_holder>
      </right_holders>
      <underlying_documents>
        <underlying_document>
          <document_name>Participation agreement</document_name>
          <deal_registered_number>
            <number>77-77/011-2021-100</number>
          </deal_registered_number>
        </underlying_document>
      </underlying_documents>
    </restrict_record>
  </restrict_records>
  <deal_records>
    <deal_record>
      <record_info>
        <registration_date>2021-06-18</registration_date>
      </record_info>
      <deal_number>77-77/011-2021-100</deal_number>
      <deal_type>
        <code>560008000000</code>
        <value>Share participation agreement</value>
      </deal_type>
      <deal_data>
        <subject>
          <share_subject_description>
            <bank>Big Bank</bank>
            <house_descriptions>
              <house_description>
                <first_ddu_date>2021-06-01</first_ddu_date>
                <room_descriptions>
                  <room_description>
                    <room_name>Apartment</room_name>
                    <room_number>45</room_number>
                    <floor_number>7</floor_number>
                    <room_area>56.3</room_area>
                  </room_description>
                </room_descriptions>
              </house_description>
            </house_descriptions>
          </share_subject_description>
        </subject>
      </deal_data>
      <parties>
        <party>
          <party_type>
            <code>020002000000</code>
            <value>Participant</value>
          </party_type>
          <party_info>Ivanov Ivan Ivanovich</party_info>
        </party>
      </parties>
    </deal_record>
  </deal_records>
</extract_contract_participation_share_holdings>`

func TestDecodeFullExtract(t *testing.T) {
	raw, err := Decode(strings.NewReader(sampleExtract))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw.Statement.RegistrationNumber != "99/2023/123456" {
		t.Fatalf("registration number: got=%q", raw.Statement.RegistrationNumber)
	}
	if raw.Land.CadNumber != "77:01:0001001:10" {
		t.Fatalf("cad number: got=%q", raw.Land.CadNumber)
	}
	if raw.Land.Area != "12500.5" {
		t.Fatalf("area: got=%q", raw.Land.Area)
	}

	if len(raw.Rights) != 1 {
		t.Fatalf("rights: want=1 got=%d", len(raw.Rights))
	}
	if got := raw.Rights[0].Holders[0].INN; got != "7701234567" {
		t.Fatalf("holder inn: got=%q", got)
	}

	if len(raw.Restricts) != 1 {
		t.Fatalf("restricts: want=1 got=%d", len(raw.Restricts))
	}
	if got := raw.Restricts[0].Documents[0].DealNumber; got != "77-77/011-2021-100" {
		t.Fatalf("restrict document deal number: got=%q", got)
	}

	if len(raw.Deals) != 1 {
		t.Fatalf("deals: want=1 got=%d", len(raw.Deals))
	}
	deal := raw.Deals[0]
	if deal.FloorNumber != "7" {
		t.Fatalf("floor: got=%q", deal.FloorNumber)
	}
	if len(deal.Parties) != 1 || deal.Parties[0].PartyInfo != "Ivanov Ivan Ivanovich" {
		t.Fatalf("parties: got=%+v", deal.Parties)
	}
}

func TestDecodeToleratesAbsentSections(t *testing.T) {
	doc := `<extract_contract_participation_share_holdings>
  <details_statement><registration_number>1</registration_number></details_statement>
  <land_record><object><common_data><cad_number>77:01:0001001:11</cad_number></common_data></object></land_record>
</extract_contract_participation_share_holdings>`

	raw, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw.Rights) != 0 || len(raw.Restricts) != 0 || len(raw.Deals) != 0 {
		t.Fatalf("expected empty child sections, got rights=%d restricts=%d deals=%d",
			len(raw.Rights), len(raw.Restricts), len(raw.Deals))
	}
}

func TestDecodeMalformedXML(t *testing.T) {
	_, err := Decode(strings.NewReader("<extract_contract_participation_share_holdings><unclosed>"))
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected DocumentError, got=%T", err)
	}
	if docErr.Code != DocumentErrorMalformedXML {
		t.Fatalf("code: want=%q got=%q", DocumentErrorMalformedXML, docErr.Code)
	}
}

func TestDecodeMissingCadNumber(t *testing.T) {
	doc := `<extract_contract_participation_share_holdings>
  <land_record><object><common_data><cad_number>  </cad_number></common_data></object></land_record>
</extract_contract_participation_share_holdings>`

	_, err := Decode(strings.NewReader(doc))
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected DocumentError, got=%T", err)
	}
	if docErr.Code != DocumentErrorMissingCadNumber {
		t.Fatalf("code: want=%q got=%q", DocumentErrorMissingCadNumber, docErr.Code)
	}
}
