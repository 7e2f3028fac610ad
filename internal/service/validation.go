package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

// maxAmount bounds the magnitude of an expense amount and of a declared
// share, in minor units. The min and max tags of expenseForm spell it out.
const maxAmount = 1_000_000_000

type participantForm struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
}

type groupForm struct {
	Name         string            `json:"name" validate:"min=2,max=50"`
	Currency     string            `json:"currency" validate:"min=1,max=5"`
	Information  string            `json:"information" validate:"max=2000"`
	Participants []participantForm `json:"participants" validate:"min=1,max=50,unique=Name,dive"`
}

type paidForForm struct {
	Participant string `json:"participant" validate:"required"`
	Shares      int64  `json:"shares" validate:"min=-1000000000,max=1000000000"`
}

type expenseForm struct {
	ExpenseDate     string        `json:"expenseDate" validate:"required,datetime=2006-01-02"`
	Title           string        `json:"title" validate:"min=2,max=200"`
	Category        int64         `json:"category" validate:"min=0"`
	Amount          int64         `json:"amount" validate:"ne=0,min=-1000000000,max=1000000000"`
	PaidBy          string        `json:"paidBy" validate:"required"`
	PaidFor         []paidForForm `json:"paidFor" validate:"min=1,unique=Participant,dive"`
	SplitMode       string        `json:"splitMode" validate:"oneof=EVENLY BY_SHARES BY_PERCENTAGE BY_AMOUNT"`
	IsReimbursement bool          `json:"isReimbursement"`
	Notes           string        `json:"notes" validate:"max=2000"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the validator tags of s and wraps failures in
// apperrors.ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = describeFieldError(fe)
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("%s allows at most %s entries", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", field, fe.Param())
		}
	case "ne":
		return fmt.Sprintf("%s must not be %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s entries must have unique %s", field, strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// groupFromForm validates form and converts it to a group with the given ID.
// Names are trimmed before validation.
func groupFromForm(groupID string, values *pb.GroupFormValues) (*models.Group, error) {
	form := groupForm{
		Name:         strings.TrimSpace(values.GetName()),
		Currency:     strings.TrimSpace(values.GetCurrency()),
		Information:  values.GetInformation(),
		Participants: make([]participantForm, len(values.GetParticipants())),
	}
	for i, p := range values.GetParticipants() {
		form.Participants[i] = participantForm{ID: p.GetId(), Name: strings.TrimSpace(p.GetName())}
	}

	if err := validateStruct(form); err != nil {
		return nil, err
	}

	group := &models.Group{
		ID:           groupID,
		Name:         form.Name,
		Currency:     form.Currency,
		Information:  form.Information,
		Participants: make([]models.Participant, len(form.Participants)),
	}
	for i, p := range form.Participants {
		group.Participants[i] = models.Participant{ID: p.ID, GroupID: groupID, Name: p.Name}
	}
	return group, nil
}

// expenseFromForm validates form against group and converts it to an expense.
// Besides the field rules, the payer and beneficiaries must belong to the
// group, the category must exist and the split must resolve.
func expenseFromForm(ctx context.Context, store storage.Store, group *models.Group, values *pb.ExpenseFormValues) (*models.Expense, error) {
	form := expenseForm{
		ExpenseDate:     values.GetExpenseDate(),
		Title:           strings.TrimSpace(values.GetTitle()),
		Category:        values.GetCategory(),
		Amount:          values.GetAmount(),
		PaidBy:          values.GetPaidBy(),
		PaidFor:         make([]paidForForm, len(values.GetPaidFor())),
		SplitMode:       values.GetSplitMode(),
		IsReimbursement: values.GetIsReimbursement(),
		Notes:           values.GetNotes(),
	}
	for i, pf := range values.GetPaidFor() {
		form.PaidFor[i] = paidForForm{Participant: pf.GetParticipant(), Shares: pf.GetShares()}
	}
	if err := validateStruct(form); err != nil {
		return nil, err
	}

	date, err := time.Parse(models.DateLayout, form.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expenseDate: %v", apperrors.ErrValidation, err)
	}

	if !group.HasParticipant(form.PaidBy) {
		return nil, fmt.Errorf("%w: paidBy %q is not a participant of the group", apperrors.ErrValidation, form.PaidBy)
	}

	paidFor := make([]models.ExpenseShare, len(form.PaidFor))
	shares := make([]calculator.Share, len(form.PaidFor))
	for i, pf := range form.PaidFor {
		if !group.HasParticipant(pf.Participant) {
			return nil, fmt.Errorf("%w: paidFor participant %q is not a participant of the group", apperrors.ErrValidation, pf.Participant)
		}
		paidFor[i] = models.ExpenseShare{ParticipantID: pf.Participant, Shares: pf.Shares}
		shares[i] = calculator.Share{ParticipantID: pf.Participant, Value: pf.Shares}
	}

	if _, err := store.GetCategory(ctx, form.Category); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown category %d", apperrors.ErrValidation, form.Category)
		}
		return nil, err
	}

	mode := models.SplitMode(form.SplitMode)
	if _, err := calculator.ResolveSplit(form.Amount, mode, shares); err != nil {
		return nil, err
	}

	return &models.Expense{
		GroupID:         group.ID,
		Title:           form.Title,
		ExpenseDate:     date,
		Amount:          form.Amount,
		PaidBy:          form.PaidBy,
		SplitMode:       mode,
		PaidFor:         paidFor,
		IsReimbursement: form.IsReimbursement,
		Notes:           form.Notes,
		CategoryID:      form.Category,
	}, nil
}
