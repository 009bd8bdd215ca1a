package auth

import (
	"context"
	"errors"

	"github.com/goliatone/go-authform/pkg/form"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/store"
	"github.com/goliatone/go-authform/pkg/validation"
)

// SignUpSubmitter registers the profile carried by an accepted sign-up
// snapshot. A taken username comes back as a username FieldError.
func SignUpSubmitter(svc *Service) form.Submitter {
	return form.SubmitterFunc(func(ctx context.Context, snap model.FormSnapshot) error {
		_, err := svc.Register(ctx, model.ProfileFromSnapshot(snap))
		switch {
		case err == nil:
			return nil
		case store.IsConflict(err):
			return validation.NewFieldError(model.FieldUsername, validation.MsgUsernameTaken)
		}
		if fieldErr, ok := validation.AsFieldError(err); ok {
			return fieldErr
		}
		return err
	})
}

// SignInSubmitter confirms the snapshot username exists. Unknown users come
// back as a username FieldError.
func SignInSubmitter(svc *Service) form.Submitter {
	return form.SubmitterFunc(func(ctx context.Context, snap model.FormSnapshot) error {
		_, err := svc.Login(ctx, snap.Value(model.FieldUsername))
		if errors.Is(err, ErrUserNotFound) {
			return validation.NewFieldError(model.FieldUsername, validation.MsgUserNotFound)
		}
		return err
	})
}
