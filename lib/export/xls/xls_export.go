package xlsexport

import (
	"bytes"
	candidateapimodels "onboarding-backend/models/api/candidate"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []candidateapimodels.CandidateView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Candidates"

var candidateHeaders = []string{"Full name", "Email", "Phone", "Status", "HR approved", "HR comment",
	"Access created", "Corporate email", "Docs verified", "Documents", "Created"}

func (i impl) ExportCandidateList(list []candidateapimodels.CandidateView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "rename xlsx sheet")
	}
	row, err := writeHeader(f, sheetName, 0, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "write xlsx header")
	}
	for _, item := range list {
		row++
		if err = writeCandidateRow(f, row, item); err != nil {
			return nil, errors.Wrap(err, "write xlsx data")
		}
	}
	return f.WriteToBuffer()
}

func writeCandidateRow(f *excelize.File, row int, item candidateapimodels.CandidateView) error {
	documents := ""
	for idx, doc := range item.Documents {
		if idx > 0 {
			documents += ", "
		}
		documents += doc
	}
	values := []interface{}{
		item.FullName,
		item.Email,
		item.Phone,
		item.Status.ToHuman(),
		yesNo(item.HrApproval.Approved),
		item.HrApproval.Comment,
		yesNo(item.ItApproval.AccessCreated),
		item.ItApproval.CorporateEmail,
		yesNo(item.FinanceApproval.DocsVerified),
		documents,
		item.CreatedAt.Format("2006-01-02 15:04"),
	}
	for idx, value := range values {
		if err := writeCell(f, sheetName, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}
