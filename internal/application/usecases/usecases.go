package usecases

import (
	"context"
	"errors"

	"trilhaquiz/internal/domain/host"
	"trilhaquiz/internal/domain/settings"
	"trilhaquiz/internal/ports"
)

// Casos de erro comuns
var (
	ErrEmailDuplicado       = errors.New("email já cadastrado")
	ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrNaoAutorizado        = errors.New("apenas o dono da partida pode realizar esta ação")
	ErrPartidaNaoEncontrada = errors.New("partida não encontrada")
)

// RegisterHostUseCase coordena o registro de um novo host.
type RegisterHostUseCase struct {
	repo         ports.HostRepository
	settingsRepo ports.SettingsRepository
	hasher       ports.PasswordHasher
}

func NewRegisterHostUseCase(repo ports.HostRepository, settingsRepo ports.SettingsRepository, hasher ports.PasswordHasher) *RegisterHostUseCase {
	return &RegisterHostUseCase{repo: repo, settingsRepo: settingsRepo, hasher: hasher}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (uc *RegisterHostUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	// 1. Verifica se email já existe
	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailDuplicado
	}

	// 2. Cria entidade Host com validações de domínio
	newHost, err := host.NewHost(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// 3. Hash da senha
	hashedPassword, err := uc.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	newHost.SetPassword(hashedPassword)

	// 4. Persiste
	if err := uc.repo.Create(ctx, newHost); err != nil {
		return nil, err
	}

	// 5. Grava preferências padrão (dificuldade de bot, som)
	if err := uc.settingsRepo.Save(ctx, newHost.ID, settings.Default()); err != nil {
		return nil, err
	}

	return &RegisterOutput{
		ID:    newHost.ID,
		Name:  newHost.Name,
		Email: newHost.Email,
	}, nil
}

// LoginHostUseCase coordena o login.
type LoginHostUseCase struct {
	repo         ports.HostRepository
	hasher       ports.PasswordHasher
	tokenService ports.TokenService
}

func NewLoginHostUseCase(repo ports.HostRepository, hasher ports.PasswordHasher, tokenService ports.TokenService) *LoginHostUseCase {
	return &LoginHostUseCase{repo: repo, hasher: hasher, tokenService: tokenService}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"` // Segundos
}

func (uc *LoginHostUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	// 1. Busca usuário
	h, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrCredenciaisInvalidas
	}

	// 2. Valida senha
	if err := uc.hasher.ComparePassword(h.PasswordHash, input.Password); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	// 3. Gera Token
	token, expiresIn, err := uc.tokenService.GenerateToken(h.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// GetMeUseCase retorna dados do usuário logado.
type GetMeUseCase struct {
	repo ports.HostRepository
}

func NewGetMeUseCase(repo ports.HostRepository) *GetMeUseCase {
	return &GetMeUseCase{repo: repo}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, userID string) (*host.Host, error) {
	h, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return h, nil
}
