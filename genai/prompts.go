package genai

// Prompt templates per artifact kind. The product is Korean-language news;
// the prompts are written in Korean and embed the article body (or the title
// list) verbatim via fmt.Sprintf.

const (
	promptDialogueSystem = "You are an article-to-conversation converter."

	promptDialogueUser = `다음은 뉴스 기사입니다. 이 기사의 주요 인물들이 실제로 말하는 것처럼, 대화를 구성해주세요. 아래의 조건을 반드시 지켜 주세요:
- "나", "친구"와 같은 기사 외 화자는 사용하지 마세요.
- 오직 기사 속 실제 인물, 단체, 기관(예: 바비킴, 제작진, 학생, 관객, 네티즌 등)만 발화할 수 있습니다.
- 각 인물에는 숫자 형태의 고유 id를 부여하세요.
- 각 발화는 1~2문장 이내로 자연스럽고 간결하게 작성하세요.
- 말투는 실제 대화처럼 질문, 반응, 설명이 섞인 형태여야 합니다.
- 정보의 흐름은 기사 순서를 따라가며 너무 과장되거나 요약식이 되지 않도록 하세요.
- 출력은 아래 형식의 JSON 딕셔너리로만 하세요. JSON 외 출력은 하지 마세요.
  json dict entry의 키는 순서를 나타내며, 내용은 "id": 고유번호, "speaker": 기사 등장인물, "content": 대사 로 이루어져 있습니다.

%s`

	promptNarrativeSystem = "You are a news-to-story converter."

	promptNarrativeUser = `다음 뉴스 기사를 이해하기 쉬운 비유 이야기로 다시 써주세요. 아래의 조건을 지켜 주세요:
- 기사의 사건 구조와 인과 관계를 그대로 유지한 채, 인물·단체·기관을 친숙한 비유 대상으로 바꿔 주세요.
- 비유한 단어와 실제 단어의 대응 관계를 dictionary로 함께 제공하세요.
- 출력은 {"narrative": 이야기 전체, "dictionary": {비유 단어: 실제 단어}} 형태의 JSON으로만 하세요. JSON 외 출력은 하지 마세요.

%s`

	promptHighlightSystem = "You are a highlight annotator."

	promptHighlightUser = `너는 긴 뉴스 기사에서 사용자가 반드시 집중해서 읽어야 할 **중요한 구절이나 문장 전체**를 강조하는 시스템이다.
사용자의 집중을 돕기 위한 "집중 읽기 모드" 기능을 위해 다음 규칙을 따른다:

1. **기사 원문은 절대 수정하거나 요약하지 말 것.** 출력은 반드시 입력된 원문과 정확히 일치해야 한다.
2. 강조는 두 가지 방식으로 할 수 있다:
   - 문장 전체가 중요하면 **문장 전체를 [[highlight]]...[[/highlight]]로 감싼다**.
   - 문장 내 특정 구절만 중요하면 해당 **구절만 [[highlight]]...[[/highlight]]로 감싼다**.
3. 전체 강조 수는 **문서 길이에 따라 5~10개 정도로 제한**한다.
4. **강조 여부는 맥락에 따라 유연하게 판단**하며, 인물·단체·기관이 언급된 문장은 강조 대상일 가능성이 높다.
5. 강조 이외에는 원문을 그대로 유지하고, 문장 순서나 구조도 변경하지 않는다.
6. 강조 마크업 외에는 어떤 텍스트도 추가하지 말고, 오직 원문 전체를 반환할 것.

%s`

	promptKeywordsSystem = "You are a news topic analyst."

	promptKeywordsUser = `다음은 오늘 하루 동안 주요 언론사에서 보도한 뉴스 기사들의 제목입니다.
기사들을 종합해볼 때, 오늘의 핵심 키워드(주제어)와 그 중요도에 대해 답해주세요.

- 단어 최대 10개
- 너무 일반적인 단어는 피하고, 사회적으로 중요하거나 빈도가 높은 이슈 중심
- 단어와 중요도(1~5)를 {"keywords": [{"keyword": 단어, "score": 중요도}]} 형태의 JSON으로 반환

기사 제목 목록:
%s`

	promptBiasSystem = "You are a media bias analyst."

	promptBiasUser = `다음은 %s에서 보도한 정치 기사입니다. 기사 내용과 언론사 성향을 종합해 아래 두 가지를 판단해 주세요:
- media_bias: 언론사의 정치적 성향 (보수 / 진보 / 중도 중 하나)
- reporting_bias: 기사 서술에 편향이 존재하는지 (있음 / 없음 중 하나)
출력은 {"media_bias": ..., "reporting_bias": ...} 형태의 JSON으로만 하세요.

%s`
)
