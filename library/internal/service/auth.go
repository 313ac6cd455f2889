package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

var errBadCredentials = errors.Wrap(errs.ErrUnauthorized, "invalid username or password")

// Login checks the password of an approved account and opens a session.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if s.tokens == nil || s.sessions == nil {
		return model.LoginResponse{}, errors.Wrap(errs.ErrUnavailable, "sessions are not configured")
	}
	creds, err := s.repo.GetCredentials(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errBadCredentials
		}
		return model.LoginResponse{}, err
	}
	if creds.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)) != nil {
		return model.LoginResponse{}, errBadCredentials
	}
	if creds.Status != model.MemberApproved {
		return model.LoginResponse{}, errors.Wrapf(errs.ErrForbidden, "account is %s", creds.Status)
	}

	member, err := s.repo.GetMember(ctx, creds.ID)
	if err != nil {
		return model.LoginResponse{}, err
	}
	token, claims, err := s.tokens.Issue(auth.Profile{
		UserID:   member.ID,
		Username: member.Username,
		Role:     string(member.Role),
	}, s.now())
	if err != nil {
		return model.LoginResponse{}, err
	}
	if err := s.sessions.Create(ctx, claims.ID, member.ID, s.tokens.TTL()); err != nil {
		return model.LoginResponse{}, errors.Wrap(errs.ErrUnavailable, err.Error())
	}

	s.log.Info("login", zap.Int64("memberID", member.ID), zap.String("role", string(member.Role)))
	return model.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Member:    member,
	}, nil
}

// Logout revokes the session the request was authenticated with.
func (s *Service) Logout(ctx context.Context) error {
	if s.sessions == nil {
		return nil
	}
	sid, err := auth.GetSessionID(ctx)
	if err != nil {
		return errors.Wrap(errs.ErrUnauthorized, err.Error())
	}
	return s.sessions.Revoke(ctx, sid)
}

// Me returns the member behind the request.
func (s *Service) Me(ctx context.Context) (model.Member, error) {
	p, err := auth.GetProfile(ctx)
	if err != nil {
		return model.Member{}, errors.Wrap(errs.ErrUnauthorized, err.Error())
	}
	return s.repo.GetMember(ctx, p.UserID)
}
