package content

var (
	AboutMe = `Profissional com mais de 15 anos de experiência em coordenação de projetos, gestão de processos, ` +
		`melhoria contínua e engenharia de segurança do trabalho. Atuo na liderança de equipes interdisciplinares, ` +
		`implementação de estratégias para otimização de processos e desenvolvimento de soluções inovadoras com ` +
		`foco em sustentabilidade, segurança e eficiência operacional.`

	AboutCertifications = `Certificações em Lean Six Sigma (Black Belt), Engenharia de Segurança do Trabalho e Desenvolvimento FullStack ` +
		`complementam minha formação e ampliam minha capacidade de solução de problemas complexos.`

	ExperienceUnilever = `Atuação na unidade da Unilever, uma fábrica modelo da Indústria 4.0, com foco em inovação e sustentabilidade. ` +
		`Experiência consolidada na liderança de equipes interfuncionais, fomentando a colaboração entre diferentes ` +
		`stakeholders para garantir a integração eficaz das iniciativas. Forte competência no planejamento e execução ` +
		`de cronogramas, controle orçamentário e asseguramento da qualidade das entregas.`

	ExperienceGeneralMills = `Coordenação de projetos multidisciplinares: atuando em diferentes setores com foco em inovação e ` +
		`sustentabilidade. Habilidade comprovada na liderança de equipes diversas e interfuncionais, promovendo a ` +
		`colaboração eficaz entre as partes interessadas. Expertise no gerenciamento de cronogramas, controle de ` +
		`custos e garantia da qualidade nas entregas.`

	ExperienceVale = "Gestão de Projetos de Manutenção: Condução da implantação de processos de Planejamento e Controle da Manutenção nas Usinas de S11D.\n" +
		"Coordenação de Melhoria Contínua: Liderança de projetos utilizando ferramentas de Lean Manufacturing e Six Sigma.\n" +
		"Promoção da Excelência Operacional: Difusão do Vale Production System (VPS) para promover a cultura de excelência operacional."

	ExperienceNewell = "Coordenação de projetos de melhoria contínua utilizando Lean Manufacturing e Six Sigma.\n" +
		"Implementação e monitoramento do sistema de eficiência operacional (OEE).\n" +
		"Estudo da viabilidade econômica de novos processos, incluindo análise de valor (VA/VE) e controle de CAPEX/OPEX.\n" +
		"Desenvolvimento de tecnologias e componentes para máquinas, resultando em economias de R$ 4.000.000,00/ano."
)
