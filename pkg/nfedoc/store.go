package nfedoc

import "sync"

// Store é a coleção de documentos da sessão.
//
// Um novo carregamento substitui a coleção por inteiro, nunca faz
// merge incremental: vale o último lote carregado. Análises em voo
// seguem usando o snapshot que obtiveram no início.
type Store struct {
	mu   sync.RWMutex
	docs []*Documento
}

// NewStore cria uma coleção vazia.
func NewStore() *Store {
	return &Store{}
}

// Substituir troca atomicamente a coleção pelo novo lote.
func (s *Store) Substituir(docs []*Documento) {
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
}

// Documentos retorna o snapshot atual, na ordem de carregamento.
// O slice retornado não deve ser modificado.
func (s *Store) Documentos() []*Documento {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs
}

// Tamanho retorna a quantidade de documentos carregados.
func (s *Store) Tamanho() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
