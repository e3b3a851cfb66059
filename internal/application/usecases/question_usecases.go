package usecases

import (
	"context"
	"errors"

	"trilhaquiz/internal/domain/question"
	"trilhaquiz/internal/ports"
)

var ErrPerguntaNaoEncontrada = errors.New("pergunta não encontrada")

// QuestionUseCases coordena a gestão do banco de perguntas.
type QuestionUseCases struct {
	repo ports.QuestionRepository
}

func NewQuestionUseCases(repo ports.QuestionRepository) *QuestionUseCases {
	return &QuestionUseCases{repo: repo}
}

type QuestionInput struct {
	Prompt  string `json:"prompt"`
	Answer  string `json:"answer"`
	Subject string `json:"subject"`
}

// CreateQuestion adiciona uma pergunta ao banco do host.
func (uc *QuestionUseCases) CreateQuestion(ctx context.Context, hostID string, input QuestionInput) (*question.Question, error) {
	q, err := question.NewQuestion(hostID, input.Prompt, input.Answer, input.Subject)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuestions lista as perguntas do host.
func (uc *QuestionUseCases) ListQuestions(ctx context.Context, hostID string) ([]*question.Question, error) {
	return uc.repo.FindByHostID(ctx, hostID)
}

// ListSubjects lista os assuntos com perguntas cadastradas.
func (uc *QuestionUseCases) ListSubjects(ctx context.Context) ([]string, error) {
	return uc.repo.ListSubjects(ctx)
}

// UpdateQuestion altera uma pergunta existente (apenas o dono).
func (uc *QuestionUseCases) UpdateQuestion(ctx context.Context, hostID, questionID string, input QuestionInput) (*question.Question, error) {
	q, err := uc.repo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrPerguntaNaoEncontrada
	}
	if q.HostID != hostID {
		return nil, ErrNaoAutorizado
	}

	if err := q.Update(input.Prompt, input.Answer, input.Subject); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteQuestion remove uma pergunta (apenas o dono).
func (uc *QuestionUseCases) DeleteQuestion(ctx context.Context, hostID, questionID string) error {
	q, err := uc.repo.FindByID(ctx, questionID)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrPerguntaNaoEncontrada
	}
	if q.HostID != hostID {
		return ErrNaoAutorizado
	}

	return uc.repo.Delete(ctx, questionID)
}
