// Package seed holds the built-in dataset used when the local store has no
// records yet.
package seed

import "github.com/alexanderramin/lessonplan/internal/domain"

// Units returns a fresh copy of the built-in units.
func Units() []domain.Unit {
	return []domain.Unit{
		{
			ID:          "bloco1",
			Name:        "Fundamentos Matemáticos Aplicados à Gestão",
			ClassCode:   "ADAG - V5",
			Shift:       "Noite",
			Description: "Bloco 1: Matemática básica, estatística e análise de dados.",
			Location:    "Sala 302",
			DiaryLink:   "https://diario.escola.com.br/adag-v5",
			DriveLink:   "https://drive.google.com/drive/folders/xyz",
		},
		{
			ID:          "bloco2",
			Name:        "Aplicação de Estatística e Ferramentas Digitais",
			ClassCode:   "ADAG - V5",
			Shift:       "Noite",
			Description: "Bloco 2: Excel, Google Sheets, Power BI e análise visual.",
			Location:    "Lab Informática 1",
			DiaryLink:   "https://diario.escola.com.br/adag-v5",
		},
		{
			ID:          "bloco3_dash",
			Name:        "Dashboards e Tomada de Decisão",
			ClassCode:   "DEIU - V1",
			Shift:       "Noite",
			Description: "Bloco 3: Criação de dashboards, KPIs e apresentações.",
			Location:    "Lab Informática 2",
			DriveLink:   "https://drive.google.com/drive/folders/abc",
		},
		{
			ID:          "bloco3_prog",
			Name:        "Programação, Segurança e Documentação",
			ClassCode:   "DEIU - V1",
			Shift:       "Noite",
			Description: "Bloco 3: IoT, Segurança da Informação, Documentação Técnica.",
			Location:    "Lab IoT",
			DiaryLink:   "https://diario.escola.com.br/deiu-v1",
		},
	}
}

// Lessons returns a fresh copy of the built-in lessons.
func Lessons() []domain.Lesson {
	return []domain.Lesson{
		{
			ID: "b1-01", UnitID: "bloco1", SequenceLabel: "Aula 01", Date: "2025-10-22",
			Title:        "Introdução à Análise de Dados e Matemática Básica",
			Description:  "Apresentação da Unidade Curricular. Conjuntos numéricos, razão e proporção.",
			Status:       domain.StatusDelivered,
			ResourceNote: "Aula 01 - Intro",
			Observations: "Estratégia de Aprendizagem",
		},
		{
			ID: "b1-02", UnitID: "bloco1", SequenceLabel: "Aula 02", Date: "2025-10-29",
			Title:        "Matemática Aplicada aos Negócios",
			Description:  "Regra de três simples e composta. Porcentagem em cenários financeiros.",
			Status:       domain.StatusDelivered,
			ResourceNote: "Aula 2_ Mat",
			Observations: "Desafio de Logística",
		},
		{
			ID: "b2-04", UnitID: "bloco2", SequenceLabel: "Aula 04", Date: "2025-11-12",
			Title:            "Introdução ao software de Planilhas",
			Description:      "Relevância do Google Sheets. Lógica condicional (SE, CONT.SE).",
			Status:           domain.StatusDelivered,
			ResourceNote:     "AULA 04 - Intro",
			PresentationNote: "apresentacao-04.pdf",
		},
		{
			ID: "b3d-07", UnitID: "bloco3_dash", SequenceLabel: "Aula 07", Date: "2025-12-03",
			Title:            "Visualização de Dados: Gráficos Dinâmicos",
			Description:      "Transformar dados brutos em visualizações interativas.",
			Status:           domain.StatusDelivered,
			ResourceNote:     "AULA 07 - Vis",
			PresentationNote: "aula.html",
		},
		{
			ID: "b3p-09", UnitID: "bloco3_prog", SequenceLabel: "Aula 09", Date: "2026-01-15",
			Title:        "Boas Práticas de Programação e Integração IoT",
			Description:  "Compreender técnicas e boas práticas. Código limpo.",
			Status:       domain.StatusInPreparation,
			ResourceNote: "Aula 09 - Boas Práticas",
		},
		{
			ID: "b3p-10", UnitID: "bloco3_prog", SequenceLabel: "Aula 10", Date: "2026-01-22",
			Title:        "Desenvolvimento de Funcionalidades e Integração",
			Description:  "Implementar funcionalidades específicas. Componentes visuais e lógicos.",
			Status:       domain.StatusInPreparation,
			ResourceNote: "Aula 10 - Dev",
		},
		{
			ID: "b3p-11", UnitID: "bloco3_prog", SequenceLabel: "Aula 11", Date: "2026-01-29",
			Title:        "Segurança da Informação em Sistemas IoT",
			Description:  "Vulnerabilidades em sistemas IoT. Autenticação e criptografia.",
			Status:       domain.StatusInPreparation,
			ResourceNote: "Aula 11 - Sec",
		},
		{
			ID: "b3p-13", UnitID: "bloco3_prog", SequenceLabel: "Aula 13", Date: "2026-02-12",
			Title:       "Integração Final e Apresentação de Resultados",
			Description: "Integrar todos os componentes. Testes completos.",
			Status:      domain.StatusToPrepare,
		},
	}
}
