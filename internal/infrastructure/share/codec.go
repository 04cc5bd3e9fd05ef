// Package share implementa o token de compartilhamento da proposta:
// JSON → base64url, o mesmo payload que vai na query string do link enviado
// ao cliente. O token é o único "armazenamento" do sistema.
//
// Biblioteca padrão por escolha: o payload é JSON puro e nenhum repositório
// de referência usa codec de terceiros para isso.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/crmpartner/proposal-api/internal/domain"
	"github.com/crmpartner/proposal-api/internal/domain/proposal"
)

// Codec implementa usecase.SnapshotCodec.
type Codec struct{}

// NewCodec constrói o codec.
func NewCodec() *Codec { return &Codec{} }

// Encode serializa a fotografia para um token URL-safe.
func (c *Codec) Encode(snap proposal.Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("share: serializar proposta: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decode abre um token. Campos desconhecidos no payload são rejeitados —
// o catálogo é fechado e chave estranha indica token adulterado ou de uma
// versão incompatível.
func (c *Codec) Decode(token string) (*proposal.Snapshot, error) {
	payload, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()

	var snap proposal.Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &snap, nil
}
