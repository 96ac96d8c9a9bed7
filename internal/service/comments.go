package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-blog-platform/pkg/log"

	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/storage"
)

// Операции над комментариями. Мутации проходят через шлюз владения:
// ресурс сперва читается (отсутствие -> ErrNotFound), затем идентичность
// запрашивающего пополево сравнивается с владельцем (расхождение ->
// ErrForbidden), и только после этого выполняется условная запись в
// хранилище. Удаление — исключение: отсутствие ресурса трактуется как
// идемпотентный успех, и владение тогда вовсе не проверяется.

// UpdateCommentInput — обновление содержимого комментария.
type UpdateCommentInput struct {
	ID        string
	Requester models.Commentator
	Content   string
}

// SetReactionInput — установка отметки Like/Dislike/None.
type SetReactionInput struct {
	ID        string
	Requester models.Commentator
	Status    models.LikeStatus
}

// CommentByID — получить комментарий по ID.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустой id;
//   - ErrNotFound — комментарий не найден;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "service/comments/CommentByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.CommentByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CommentByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// UpdateComment — обновление содержимого с проверкой владения.
//
// Валидация:
//   - id и content не должны быть пустыми (после TrimSpace);
//   - Requester обязан быть заполнен (анонимная мутация невозможна).
//
// Поведение/ошибки:
//   - ErrNotFound — комментарий отсутствует (в т.ч. проигранная гонка
//     с конкурентным удалением между чтением и записью);
//   - ErrForbidden — запрашивающий не владелец;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) UpdateComment(ctx context.Context, in UpdateCommentInput) error {
	const op = "service/comments/UpdateComment"

	in.ID = strings.TrimSpace(in.ID)
	lg := log.From(ctx).With("op", op, "id", in.ID, "user_id", in.Requester.UserID.String())

	if in.ID == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		lg.Warn("invalid argument: empty content")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Requester.IsZero() {
		lg.Warn("invalid argument: empty requester")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comm, err := s.storage.CommentByID(ctx, in.ID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CommentByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !comm.Owner().Matches(in.Requester) {
		lg.Warn("ownership check failed")
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	// Запись условная — по id И владельцу: если владение сменилось после
	// чтения, запись не совпадёт ни с одним документом.
	if err := s.storage.UpdateCommentContent(ctx, in.ID, in.Requester, in.Content); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment gone before write")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateCommentContent", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// SetCommentReaction — установка отметки с той же проверкой владения,
// что и у обновления содержимого (наблюдаемый контракт API).
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустой id, пустой Requester или статус вне перечисления;
//   - ErrNotFound / ErrForbidden — как у UpdateComment;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) SetCommentReaction(ctx context.Context, in SetReactionInput) error {
	const op = "service/comments/SetCommentReaction"

	in.ID = strings.TrimSpace(in.ID)
	lg := log.From(ctx).With("op", op, "id", in.ID, "user_id", in.Requester.UserID.String())

	if in.ID == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Requester.IsZero() {
		lg.Warn("invalid argument: empty requester")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, ok := models.ParseLikeStatus(string(in.Status)); !ok {
		lg.Warn("invalid argument: bad like status")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comm, err := s.storage.CommentByID(ctx, in.ID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CommentByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !comm.Owner().Matches(in.Requester) {
		lg.Warn("ownership check failed")
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if err := s.storage.SetCommentReaction(ctx, in.ID, in.Requester, in.Status); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment gone before write")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SetCommentReaction", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// DeleteComment — идемпотентное удаление.
//
// Поведение:
//   - комментария уже нет — успех без проверки владения;
//   - комментарий есть, но владелец другой — ErrForbidden, запись остаётся;
//   - deleted==0 после успешной проверки (проигранная гонка) — успех: цель
//     «записи нет» достигнута.
func (s *Service) DeleteComment(ctx context.Context, id string, requester models.Commentator) error {
	const op = "service/comments/DeleteComment"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id, "user_id", requester.UserID.String())

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if requester.IsZero() {
		lg.Warn("invalid argument: empty requester")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comm, err := s.storage.CommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("comment already absent")
			return nil
		}

		lg.Error("storage error on CommentByID", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !comm.Owner().Matches(requester) {
		lg.Warn("ownership check failed")
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	deleted, err := s.storage.DeleteComment(ctx, id)
	if err != nil {
		lg.Error("storage error on DeleteComment", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if deleted == 0 {
		lg.Info("comment deleted concurrently")
	}

	return nil
}
