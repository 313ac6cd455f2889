package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

func membershipEnd(from time.Time) *time.Time {
	end := from.AddDate(1, 0, 0)
	return &end
}

func membershipType(t model.MembershipType) (model.MembershipType, error) {
	if t == "" {
		return model.MembershipAdult, nil
	}
	if !t.Valid() {
		return "", errors.Wrapf(errs.ErrValidation, "unknown membership type %q", t)
	}
	return t, nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}
	return string(hash), nil
}

func (s *Service) GetMember(ctx context.Context, id int64) (model.Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context, f model.MemberFilter) (model.ListMembers, error) {
	if f.Status != "" && !f.Status.Valid() {
		return model.ListMembers{}, errors.Wrapf(errs.ErrValidation, "unknown status %q", f.Status)
	}
	if f.Role != "" && !f.Role.Valid() {
		return model.ListMembers{}, errors.Wrapf(errs.ErrValidation, "unknown role %q", f.Role)
	}
	return s.repo.ListMembers(ctx, f)
}

// RegisterMember creates a self-registered member waiting for staff approval.
func (s *Service) RegisterMember(ctx context.Context, req model.RegisterRequest) (model.Member, error) {
	mt, err := membershipType(req.MembershipType)
	if err != nil {
		return model.Member{}, err
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.Member{}, err
	}
	return s.repo.CreateMember(ctx, model.NewMember{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		Role:           model.RoleMember,
		Status:         model.MemberPending,
		MembershipType: mt,
	})
}

// CreateMemberDirect adds a member at the desk, approved from the start.
func (s *Service) CreateMemberDirect(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	mt, err := membershipType(req.MembershipType)
	if err != nil {
		return model.Member{}, err
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.Member{}, err
	}
	return s.repo.CreateMember(ctx, model.NewMember{
		Email:          req.Email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		Role:           model.RoleMember,
		Status:         model.MemberApproved,
		MembershipType: mt,
		ExpirationDate: membershipEnd(s.now()),
	})
}

// CreateStaff adds a librarian or admin account.
func (s *Service) CreateStaff(ctx context.Context, username, email, password string, role model.Role) (model.Member, error) {
	if !role.IsStaff() {
		return model.Member{}, errors.Wrapf(errs.ErrValidation, "role %q is not a staff role", role)
	}
	if username == "" || email == "" || len(password) < 6 {
		return model.Member{}, errors.Wrap(errs.ErrValidation, "username, email and a password of 6+ characters are required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return model.Member{}, err
	}
	return s.repo.CreateMember(ctx, model.NewMember{
		Username:       username,
		Email:          email,
		PasswordHash:   hash,
		Role:           role,
		Status:         model.MemberApproved,
		MembershipType: model.MembershipAdult,
	})
}

func (s *Service) UpdateMember(ctx context.Context, id int64, req model.UpdateMemberRequest) (model.Member, error) {
	if req.MembershipType != nil && !req.MembershipType.Valid() {
		return model.Member{}, errors.Wrapf(errs.ErrValidation, "unknown membership type %q", *req.MembershipType)
	}
	var member model.Member
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetMemberForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if req.Email != nil {
			cur.Email = *req.Email
		}
		if req.FirstName != nil {
			cur.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			cur.LastName = *req.LastName
		}
		if req.Phone != nil {
			cur.Phone = *req.Phone
		}
		if req.Address != nil {
			cur.Address = *req.Address
		}
		if req.MembershipType != nil {
			cur.MembershipType = *req.MembershipType
		}
		member, err = s.repo.UpdateMember(ctx, cur)
		return err
	})
	if err != nil {
		return model.Member{}, err
	}
	return member, nil
}

// transition moves a member between statuses under a row lock.
func (s *Service) transition(ctx context.Context, id int64, to model.MemberStatus,
	allowed func(m model.Member) bool, expiration func(m model.Member) *time.Time,
) (model.Member, error) {
	var member model.Member
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetMemberForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !allowed(cur) {
			return errors.Wrapf(errs.ErrInvalidState, "member %d is %s, cannot become %s", id, cur.Status, to)
		}
		member, err = s.repo.SetMemberStatus(ctx, id, to, expiration(cur))
		return err
	})
	if err != nil {
		return model.Member{}, err
	}
	return member, nil
}

// ApproveMember approves a pending registration for one year and assigns its membership ID.
func (s *Service) ApproveMember(ctx context.Context, id int64) (model.Member, error) {
	now := s.now()
	return s.transition(ctx, id, model.MemberApproved,
		func(m model.Member) bool { return m.Status == model.MemberPending },
		func(model.Member) *time.Time { return membershipEnd(now) },
	)
}

func (s *Service) DeactivateMember(ctx context.Context, id int64) (model.Member, error) {
	return s.transition(ctx, id, model.MemberSuspended,
		func(m model.Member) bool { return m.Status != model.MemberSuspended },
		func(model.Member) *time.Time { return nil },
	)
}

// ReactivateMember restores a suspended or expired member, renewing a lapsed membership.
func (s *Service) ReactivateMember(ctx context.Context, id int64) (model.Member, error) {
	now := s.now()
	return s.transition(ctx, id, model.MemberApproved,
		func(m model.Member) bool {
			return m.Status == model.MemberSuspended || m.Status == model.MemberExpired
		},
		func(m model.Member) *time.Time {
			if m.ExpirationDate == nil || m.ExpirationDate.Before(now) {
				return membershipEnd(now)
			}
			return nil
		},
	)
}

// MemberHistory lists every loan of a member, newest first.
func (s *Service) MemberHistory(ctx context.Context, id int64, paging model.Paging) (model.ListLoans, error) {
	if _, err := s.repo.GetMember(ctx, id); err != nil {
		return model.ListLoans{}, err
	}
	return s.listLoans(ctx, model.LoanFilter{MemberID: id, Paging: paging})
}
