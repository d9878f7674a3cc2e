package webui

const defaultIndexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Startup Docs</title>
  <style>
    body { font-family: "Segoe UI", sans-serif; margin: 0; background: linear-gradient(145deg,#f7fafc,#e9eef7); color: #1f2937; }
    .wrap { max-width: 900px; margin: 0 auto; padding: 20px; }
    .panel { background: #fff; border-radius: 12px; box-shadow: 0 8px 30px rgba(15,23,42,.08); padding: 16px; margin-bottom: 16px; }
    label { display: block; margin-top: 10px; font-weight: 600; }
    input, select, textarea { width: 100%; box-sizing: border-box; padding: 8px; border: 1px solid #cbd5e1; border-radius: 8px; margin-top: 4px; }
    textarea { min-height: 70px; }
    button { margin-top: 14px; padding: 10px 16px; border: 0; border-radius: 8px; background: #0f766e; color: #fff; cursor: pointer; }
    button:hover { background: #0d9488; }
    #result { white-space: pre-wrap; }
    .error { color: #b91c1c; margin-top: 10px; }
    fieldset { border: 1px solid #e2e8f0; border-radius: 8px; margin-top: 10px; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="panel">
      <h2>Startup Document Generator</h2>
      <label>Document Type</label>
      <select id="docType"></select>
      <div id="fields"></div>
      <label>Response Language</label>
      <select id="language"></select>
      <label>Response Tone</label>
      <select id="tone"></select>
      <button id="generate">Generate Document</button>
      <div id="error" class="error"></div>
    </div>
    <div class="panel">
      <h3>Generated Document</h3>
      <div id="result"></div>
      <div id="download"></div>
    </div>
    <div class="panel">
      <h3>Previous Documents</h3>
      <div id="history"></div>
    </div>
  </div>
  <script>
    const sessionId = 'web-' + Date.now();
    const docType = document.getElementById('docType');
    const fieldsBox = document.getElementById('fields');
    let fields = [];

    function option(sel, value, label) {
      const o = document.createElement('option');
      o.value = value; o.textContent = label || value;
      sel.appendChild(o);
    }

    async function loadTypes() {
      const data = await (await fetch('/api/types')).json();
      data.types.forEach(t => option(docType, t.key, t.label));
      data.tones.forEach(t => option(document.getElementById('tone'), t));
      data.languages.forEach(l => option(document.getElementById('language'), l));
      await loadSchema();
    }

    function renderField(f, parent) {
      if (f.kind === 'section') {
        const fs = document.createElement('fieldset');
        const lg = document.createElement('legend');
        lg.textContent = f.label;
        fs.appendChild(lg);
        (f.children || []).forEach(c => renderField(c, fs));
        parent.appendChild(fs);
        return;
      }
      const label = document.createElement('label');
      label.textContent = f.label;
      parent.appendChild(label);
      let el;
      if (f.kind === 'textarea') {
        el = document.createElement('textarea');
      } else if (f.kind === 'select') {
        el = document.createElement('select');
        (f.options || []).forEach(o => option(el, o));
        if (f.default) el.value = f.default;
      } else {
        el = document.createElement('input');
        el.type = f.kind === 'number' ? 'number' : 'text';
        if (f.default) el.value = f.default;
      }
      el.dataset.key = f.key;
      if (f.placeholder) el.placeholder = f.placeholder;
      parent.appendChild(el);
    }

    async function loadSchema() {
      const data = await (await fetch('/api/schema?type=' + docType.value)).json();
      fields = data.fields || [];
      fieldsBox.innerHTML = '';
      fields.forEach(f => renderField(f, fieldsBox));
    }

    async function loadHistory() {
      const data = await (await fetch('/api/history?session_id=' + sessionId)).json();
      const box = document.getElementById('history');
      box.innerHTML = '';
      (data.documents || []).forEach(d => {
        const div = document.createElement('div');
        div.innerHTML = '<strong>' + d.label + ' - Document ' + (d.index + 1) + '</strong> ' + d.download;
        box.appendChild(div);
      });
    }

    async function generate() {
      document.getElementById('error').textContent = '';
      const values = {};
      fieldsBox.querySelectorAll('[data-key]').forEach(el => { values[el.dataset.key] = el.value; });
      const body = {
        session_id: sessionId,
        document_type: docType.value,
        language: document.getElementById('language').value,
        tone: document.getElementById('tone').value,
        fields: values
      };
      const resp = await fetch('/api/generate', { method: 'POST', headers: {'Content-Type': 'application/json'}, body: JSON.stringify(body) });
      const data = await resp.json();
      if (!resp.ok) {
        document.getElementById('error').textContent = data.error || 'Generation failed.';
        return;
      }
      document.getElementById('result').innerHTML = data.html || data.content;
      document.getElementById('download').innerHTML = data.download;
      await loadHistory();
    }

    docType.addEventListener('change', loadSchema);
    document.getElementById('generate').addEventListener('click', generate);
    loadTypes();
  </script>
</body>
</html>`
